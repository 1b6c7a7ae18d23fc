package main

import (
	"errors"

	"github.com/spf13/cobra"

	"munassist/cmd/munassist/chat"
	"munassist/internal/debate"
)

var debateFile string

var debateCmd = &cobra.Command{
	Use:   "debate [discurso]",
	Short: "Inicia una interpelación interactiva contra una delegación rival",
	Long: `Envía tu discurso a una delegación rival simulada que lo analiza,
ataca su punto más débil y debate tus respuestas en tercera persona.
La sesión es interactiva; sal con Esc o Ctrl+C.`,
	RunE: runDebate,
}

func init() {
	debateCmd.Flags().StringVarP(&debateFile, "file", "f", "", "Leer el discurso desde un archivo")
}

func runDebate(cmd *cobra.Command, args []string) error {
	speech, err := readInput(args, debateFile)
	if err != nil {
		return err
	}
	if isBlank(speech) {
		return errors.New("Por favor, introduce tu discurso para iniciar la interpelación.")
	}

	holder := debate.NewHolder(service)
	return chat.Run(holder, speech)
}
