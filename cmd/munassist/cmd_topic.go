package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var topicCmd = &cobra.Command{
	Use:   "topic [tópico]",
	Short: "Desglosa un tópico en preguntas guía de investigación",
	RunE:  runTopic,
}

func runTopic(cmd *cobra.Command, args []string) error {
	topic, err := readInput(args, "")
	if err != nil {
		return err
	}
	if isBlank(topic) {
		return errors.New("Por favor, introduce un tópico para desglosar.")
	}

	text, err := service.TopicBreakdown(cmd.Context(), topic)
	if err != nil {
		return featureError("Ocurrió un error al generar las preguntas. Por favor, inténtalo de nuevo.", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(text))
	return nil
}
