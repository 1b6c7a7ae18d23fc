package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var thinkCmd = &cobra.Command{
	Use:   "think [problema]",
	Short: "Resuelve un problema matemático o de lógica paso a paso",
	Long: `Resuelve el problema con un presupuesto de razonamiento extendido
y muestra el desarrollo completo, no solo el resultado.`,
	RunE: runThink,
}

func runThink(cmd *cobra.Command, args []string) error {
	problem, err := readInput(args, "")
	if err != nil {
		return err
	}
	if isBlank(problem) {
		return errors.New("Por favor, introduce un problema matemático o de lógica.")
	}

	text, err := service.SolveProblem(cmd.Context(), problem)
	if err != nil {
		return featureError("Ocurrió un error al resolver el problema. Por favor, inténtalo de nuevo.", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(text))
	return nil
}
