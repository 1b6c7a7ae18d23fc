package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlank(t *testing.T) {
	assert.True(t, isBlank(""))
	assert.True(t, isBlank("   \t\n"))
	assert.False(t, isBlank("texto"))
	assert.False(t, isBlank(" x "))
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "discurso.txt")
	require.NoError(t, os.WriteFile(path, []byte("desde archivo"), 0644))

	got, err := readInput(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "desde archivo", got)

	got, err = readInput([]string{"dos", "palabras"}, "")
	require.NoError(t, err)
	assert.Equal(t, "dos palabras", got)

	got, err = readInput(nil, "")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = readInput(nil, filepath.Join(t.TempDir(), "no-existe.txt"))
	require.Error(t, err)
}

func TestWithImageExtension(t *testing.T) {
	assert.Equal(t, "foto.png", withImageExtension("foto.png", "image/jpeg"))
	assert.Equal(t, "salida.jpg", withImageExtension("salida", "image/jpeg"))
	assert.Equal(t, "salida.png", withImageExtension("salida", "image/png"))
	assert.Equal(t, "salida.tiff", withImageExtension("salida", "image/tiff"))
}

// Blank required fields must surface the panel message without any
// network call; the global service is nil here, so reaching it would
// panic the test.
func TestValidationShortCircuits(t *testing.T) {
	cases := []struct {
		name string
		run  func() error
		want string
	}{
		{"research", func() error { return runResearch(researchCmd, nil) },
			"Por favor, introduce una pregunta."},
		{"topic", func() error { return runTopic(topicCmd, []string{"  "}) },
			"Por favor, introduce un tópico para desglosar."},
		{"think", func() error { return runThink(thinkCmd, nil) },
			"Por favor, introduce un problema matemático o de lógica."},
		{"analyze", func() error { return runAnalyze(analyzeCmd, nil) },
			"Por favor, introduce texto o sube una imagen para analizar."},
		{"image", func() error { return runImage(imageCmd, []string{" "}) },
			"Por favor, describe la imagen que quieres crear o la edición que quieres realizar."},
		{"speech", func() error { return runSpeech(speechCmd, []string{"discurso sin tiempo"}) },
			"Por favor, introduce el discurso y el tiempo límite."},
		{"paper", func() error { return runPaper(paperCmd, []string{"contenido sin campos"}) },
			"Por favor, completa todos los campos."},
		{"debate", func() error { return runDebate(debateCmd, nil) },
			"Por favor, introduce tu discurso para iniciar la interpelación."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}
