package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/app"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/classifier"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/config"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/imaging"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/knowledge"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/logger"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/sensor"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "maize",
		Short: "Maize leaf disease detection server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(triggerCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			application := app.NewApp()
			defer application.Close()
			return application.Run()
		},
	}
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [image]",
		Short: "Classify a single image file and print the diagnosis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logger.NewLogger(cfg)

			clf, err := classifier.New(cfg.ModelPath, cfg.MetadataPath, log)
			if err != nil {
				return fmt.Errorf("load model: %w", err)
			}
			defer clf.Close()

			tensor, err := imaging.DecodeFile(args[0])
			if err != nil {
				return err
			}

			result, err := clf.Predict(tensor)
			if err != nil {
				return err
			}

			disease, err := knowledge.Lookup(result.Label)
			if err != nil {
				return err
			}

			fmt.Printf("Diagnosis:  %s\n", result.Label)
			fmt.Printf("Confidence: %.2f%%\n", result.Confidence*100)
			fmt.Printf("Solution:   %s\n", disease.Solution)
			return nil
		},
	}
}

func triggerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trigger",
		Short: "Ask the field sensor to capture and upload an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logger.NewLogger(cfg)

			client := sensor.NewClient(cfg.SensorAddress, time.Duration(cfg.SensorTimeout)*time.Second, log)
			reply, err := client.Trigger(context.Background())
			if err != nil {
				return err
			}

			pretty, err := json.MarshalIndent(reply, "", "  ")
			if err != nil {
				return err
			}
			fmt.Printf("Sensor response:\n%s\n", pretty)
			return nil
		},
	}
}
