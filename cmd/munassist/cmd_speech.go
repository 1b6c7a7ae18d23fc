package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	speechFile string
	speechTime string
)

var speechCmd = &cobra.Command{
	Use:   "speech [discurso]",
	Short: "Corrige un discurso y lo ajusta a un límite de tiempo",
	Long: `Reescribe un discurso de delegado según la estructura de tres
niveles (mundial, nacional, internacional), estrictamente en tercera
persona y ajustado al tiempo disponible menos cinco segundos.`,
	RunE: runSpeech,
}

func init() {
	speechCmd.Flags().StringVarP(&speechFile, "file", "f", "", "Leer el discurso desde un archivo")
	speechCmd.Flags().StringVarP(&speechTime, "time", "t", "", "Tiempo disponible, p. ej. 1:30")
}

func runSpeech(cmd *cobra.Command, args []string) error {
	speech, err := readInput(args, speechFile)
	if err != nil {
		return err
	}
	if isBlank(speech) || isBlank(speechTime) {
		return errors.New("Por favor, introduce el discurso y el tiempo límite.")
	}

	text, err := service.CorrectSpeech(cmd.Context(), speech, speechTime)
	if err != nil {
		return featureError("Ocurrió un error al corregir el discurso. Por favor, inténtalo de nuevo.", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
