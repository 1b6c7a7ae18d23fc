package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"munassist/internal/assistant"
	"munassist/internal/config"
	"munassist/internal/gemini"
	"munassist/internal/logging"
)

var (
	// Global flags
	verbose    bool
	apiKey     string
	configPath string

	// Logger
	logger *zap.Logger

	// Process-wide wiring, built once in PersistentPreRunE and read-only
	// afterwards.
	cfg     *config.Config
	service *assistant.Service
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "munassist",
	Short: "munassist - Asistente para delegados de Modelos de Naciones Unidas",
	Long: `munassist es un asistente de preparación para delegados MUN.

Ofrece investigación con fuentes citadas, corrección de discursos y
documentos de posición, desglose de tópicos, resolución de problemas,
análisis de contenido, generación de imágenes y un modo de interpelación
interactivo contra una delegación rival simulada.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if apiKey != "" {
			cfg.Gemini.APIKey = apiKey
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		if err := logging.Initialize(cfg.LogDir(), cfg.Logging.DebugMode || verbose, level); err != nil {
			logger.Warn("diagnostic logging disabled", zap.Error(err))
		}
		logging.Boot("Configuration loaded, text=%s pro=%s", cfg.Gemini.TextModel, cfg.Gemini.ProModel)

		client := gemini.NewClient(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			BaseURL: cfg.Gemini.BaseURL,
			Timeout: cfg.GeminiTimeout(),
		})
		service = assistant.NewService(client, cfg.Gemini)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Close()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY and config file)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.munassist/config.yaml)")

	rootCmd.AddCommand(researchCmd)
	rootCmd.AddCommand(speechCmd)
	rootCmd.AddCommand(paperCmd)
	rootCmd.AddCommand(topicCmd)
	rootCmd.AddCommand(thinkCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(debateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
