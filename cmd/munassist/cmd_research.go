package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var researchCmd = &cobra.Command{
	Use:   "research [pregunta]",
	Short: "Busca fuentes oficiales sobre una pregunta, ordenadas por fecha",
	Long: `Realiza una búsqueda restringida a sitios .gov, .org y un.org y
devuelve una lista de enlaces a fuentes relevantes, de la más reciente a
la más antigua, junto con las citas de respaldo.`,
	RunE: runResearch,
}

func runResearch(cmd *cobra.Command, args []string) error {
	query, err := readInput(args, "")
	if err != nil {
		return err
	}
	if isBlank(query) {
		return errors.New("Por favor, introduce una pregunta.")
	}

	result, err := service.Research(cmd.Context(), query)
	if err != nil {
		return featureError("Ocurrió un error al realizar la búsqueda. Por favor, inténtalo de nuevo.", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(result.Text))
	if len(result.Citations) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\nFuentes:")
		for i, c := range result.Citations {
			title := c.Title
			if title == "" {
				title = c.URI
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s\n     %s\n", i+1, title, c.URI)
		}
	}
	return nil
}
