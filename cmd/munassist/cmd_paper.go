package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"munassist/internal/assistant"
)

var (
	paperCommission string
	paperTopic      string
	paperDelegation string
	paperDelegate   string
	paperFile       string
)

var paperCmd = &cobra.Command{
	Use:   "paper [contenido]",
	Short: "Revisa un documento de posición y sugiere mejoras",
	Long: `Analiza un borrador de documento de posición y devuelve una lista
de sugerencias en texto plano. El documento nunca se reescribe; las
mejoras quedan en manos del delegado.`,
	RunE: runPaper,
}

func init() {
	paperCmd.Flags().StringVar(&paperCommission, "commission", "", "Comisión del documento")
	paperCmd.Flags().StringVar(&paperTopic, "topic", "", "Tópico asignado")
	paperCmd.Flags().StringVar(&paperDelegation, "delegation", "", "Delegación representada")
	paperCmd.Flags().StringVar(&paperDelegate, "delegate", "", "Nombre del delegado")
	paperCmd.Flags().StringVarP(&paperFile, "file", "f", "", "Leer el contenido desde un archivo")
}

func runPaper(cmd *cobra.Command, args []string) error {
	content, err := readInput(args, paperFile)
	if err != nil {
		return err
	}
	if isBlank(paperCommission) || isBlank(paperTopic) || isBlank(paperDelegation) ||
		isBlank(paperDelegate) || isBlank(content) {
		return errors.New("Por favor, completa todos los campos.")
	}

	text, err := service.CorrectPositionPaper(cmd.Context(), assistant.PositionPaper{
		Commission: paperCommission,
		Topic:      paperTopic,
		Delegation: paperDelegation,
		Delegate:   paperDelegate,
		Content:    content,
	})
	if err != nil {
		return featureError("Ocurrió un error al analizar el documento. Por favor, inténtalo de nuevo.", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
