package main

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"munassist/internal/media"
)

var (
	imageInput  string
	imageOutput string
)

var imageCmd = &cobra.Command{
	Use:   "image [descripción]",
	Short: "Genera una imagen nueva o edita una existente",
	Long: `Sin imagen de entrada genera una imagen cuadrada a partir de la
descripción. Con --input envía la imagen junto con la descripción como
una instrucción de edición.`,
	RunE: runImage,
}

func init() {
	imageCmd.Flags().StringVarP(&imageInput, "input", "i", "", "Imagen existente a editar")
	imageCmd.Flags().StringVarP(&imageOutput, "output", "o", "imagen", "Archivo de salida (la extensión se deduce del tipo)")
}

func runImage(cmd *cobra.Command, args []string) error {
	prompt, err := readInput(args, "")
	if err != nil {
		return err
	}
	if isBlank(prompt) {
		return errors.New("Por favor, describe la imagen que quieres crear o la edición que quieres realizar.")
	}

	var input *media.EncodedImage
	if imageInput != "" {
		input, err = media.EncodeFile(imageInput)
		if err != nil {
			return err
		}
	}

	uri, err := service.GenerateOrEditImage(cmd.Context(), prompt, input)
	if err != nil {
		return featureError("Ocurrió un error al procesar la imagen. Por favor, inténtalo de nuevo.", err)
	}

	data, mimeType, err := media.ParseDataURI(uri)
	if err != nil {
		return featureError("Ocurrió un error al procesar la imagen. Por favor, inténtalo de nuevo.", err)
	}

	out := withImageExtension(imageOutput, mimeType)
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("no se pudo guardar la imagen en %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imagen guardada en %s (%s, %d bytes)\n", out, mimeType, len(data))
	return nil
}

// withImageExtension appends an extension derived from the MIME type
// unless the path already carries one.
func withImageExtension(path, mimeType string) string {
	if filepath.Ext(path) != "" {
		return path
	}
	exts, err := mime.ExtensionsByType(mimeType)
	if err == nil && len(exts) > 0 {
		// Prefer the conventional short forms.
		for _, preferred := range []string{".jpg", ".png", ".webp"} {
			for _, ext := range exts {
				if ext == preferred {
					return path + ext
				}
			}
		}
		return path + exts[0]
	}
	if strings.HasPrefix(mimeType, "image/") {
		return path + "." + strings.TrimPrefix(mimeType, "image/")
	}
	return path
}
