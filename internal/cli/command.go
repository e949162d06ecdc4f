// Package cli implements ttsctl, a command-line client for the jargon
// translation service.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"techtospeak/internal/document"
	"techtospeak/internal/domain"
	"techtospeak/internal/service"
)

// ServiceFactory builds the service used by a subcommand. It is called once per run.
type ServiceFactory func(ctx context.Context) (service.JargonService, error)

// Flags holds the values of the subcommand flags.
type Flags struct {
	Area     string
	MIMEType string
}

// CreateRootCommand creates the ttsctl root command and its subcommands.
func CreateRootCommand(newService ServiceFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ttsctl",
		Short: "Technical jargon to plain language",
		Long: `ttsctl sends audio, text, documents and images to the model and prints
the resulting explanation record as JSON.

Examples:
  ttsctl transcribe nota.webm
  ttsctl explain --area mecanica "La bomba de refrigerante está cavitando"
  ttsctl document --area redes informe.pdf
  ttsctl image pantalla.png`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		transcribeCommand(newService),
		explainCommand(newService),
		documentCommand(newService),
		imageCommand(newService),
	)
	return rootCmd
}

func transcribeCommand(newService ServiceFactory) *cobra.Command {
	flags := &Flags{}
	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe an audio recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			mimeType := flags.MIMEType
			if mimeType == "" {
				mimeType = document.DetectMIME(args[0], data)
			}

			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			text, err := svc.TranscribeAudio(cmd.Context(), data, mimeType)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{
				"nombre_archivo": filepath.Base(args[0]),
				"mime_type":      mimeType,
				"texto":          text,
			})
		},
	}
	cmd.Flags().StringVar(&flags.MIMEType, "mime", "", "Audio MIME type (default: detected from the file)")
	return cmd
}

func explainCommand(newService ServiceFactory) *cobra.Command {
	flags := &Flags{}
	cmd := &cobra.Command{
		Use:   "explain [text...]",
		Short: "Explain technical text (reads stdin when no text is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				text = string(b)
			}
			if strings.TrimSpace(text) == "" {
				return domain.ErrEmptyText
			}

			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			rec, err := svc.ExplainJargon(cmd.Context(), text, flags.Area)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}
	cmd.Flags().StringVarP(&flags.Area, "area", "a", "", "Trade or field (default: general)")
	return cmd
}

func documentCommand(newService ServiceFactory) *cobra.Command {
	flags := &Flags{}
	cmd := &cobra.Command{
		Use:   "document <file>",
		Short: "Extract and explain a document (pdf, docx, xlsx, txt, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := filepath.Base(args[0])
			if !domain.AllowedDocumentExtensions[strings.ToLower(filepath.Ext(filename))] {
				return fmt.Errorf("%s: %w", filename, domain.ErrUnsupportedFileType)
			}
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			rec, err := svc.AnalyzeDocument(cmd.Context(), data, filename, flags.Area)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}
	cmd.Flags().StringVarP(&flags.Area, "area", "a", domain.DefaultUploadDomainHint, "Trade or field")
	return cmd
}

func imageCommand(newService ServiceFactory) *cobra.Command {
	flags := &Flags{}
	cmd := &cobra.Command{
		Use:   "image <file>",
		Short: "Read and explain the text in an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			filename := filepath.Base(args[0])
			if !strings.HasPrefix(document.DetectMIME(filename, data), "image/") {
				return fmt.Errorf("%s: %w", filename, domain.ErrNotAnImage)
			}

			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			rec, err := svc.AnalyzeImage(cmd.Context(), data, filename, flags.Area)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}
	cmd.Flags().StringVarP(&flags.Area, "area", "a", domain.DefaultUploadDomainHint, "Trade or field")
	return cmd
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrEmptyFile)
	}
	return data, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
