package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"munassist/internal/media"
)

var (
	analyzeFile  string
	analyzeImage string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [texto]",
	Short: "Condensa texto y/o una imagen en un resumen conciso",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Leer el texto desde un archivo")
	analyzeCmd.Flags().StringVarP(&analyzeImage, "image", "i", "", "Imagen a incluir en el análisis")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInput(args, analyzeFile)
	if err != nil {
		return err
	}
	if isBlank(text) && analyzeImage == "" {
		return errors.New("Por favor, introduce texto o sube una imagen para analizar.")
	}

	var image *media.EncodedImage
	if analyzeImage != "" {
		image, err = media.EncodeFile(analyzeImage)
		if err != nil {
			return err
		}
	}

	summary, err := service.AnalyzeContent(cmd.Context(), text, image)
	if err != nil {
		return featureError("Ocurrió un error al analizar el contenido. Por favor, inténtalo de nuevo.", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(summary))
	return nil
}
