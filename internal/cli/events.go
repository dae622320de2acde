package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ninjasaskeh/vr46/internal/application/weighing"
	infrakafka "github.com/ninjasaskeh/vr46/internal/infrastructure/kafka"
	"github.com/ninjasaskeh/vr46/pkg/config"
)

var (
	completedLabel = color.New(color.FgGreen).Sprint(weighing.EventWeighingCompleted)
	lowStockLabel  = color.New(color.FgRed, color.Bold).Sprint(weighing.EventMaterialLowStock)
)

// formatEvent una línea legible por evento; tipos desconocidos se muestran crudos.
func formatEvent(msg infrakafka.Message) string {
	prefix := fmt.Sprintf("[%d:%d]", msg.Partition, msg.Offset)
	switch msg.EventType {
	case weighing.EventWeighingCompleted:
		var ev weighing.WeighingCompletedEvent
		if err := json.Unmarshal(msg.Value, &ev); err == nil {
			return fmt.Sprintf("%s %s record=%s material=%s net=%s vehicle=%s",
				prefix, completedLabel, ev.RecordID, ev.MaterialID, ev.NetWeight.String(), ev.VehicleNumber)
		}
	case weighing.EventMaterialLowStock:
		var ev weighing.LowStockEvent
		if err := json.Unmarshal(msg.Value, &ev); err == nil {
			return fmt.Sprintf("%s %s material=%s remaining=%s %s status=%s",
				prefix, lowStockLabel, ev.MaterialID, ev.Remaining.String(), ev.Unit, ev.Status)
		}
	}
	return fmt.Sprintf("%s %s key=%s %s", prefix, msg.EventType, msg.Key, msg.Value)
}

// EventsCmd inspección del tópico de eventos de pesaje.
func EventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect weighing events published to Kafka",
	}
	tail := &cobra.Command{
		Use:   "tail",
		Short: "Follow the weighing topic until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.Kafka.Enabled() {
				return fmt.Errorf("KAFKA_BROKERS is not set")
			}
			group, _ := cmd.Flags().GetString("group")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			consumer := infrakafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topic, group, log)
			defer consumer.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s...\n", cfg.Kafka.Topic)
			err = consumer.Consume(ctx, func(_ context.Context, msg infrakafka.Message) error {
				fmt.Fprintln(cmd.OutOrStdout(), formatEvent(msg))
				return nil
			})
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}
	tail.Flags().String("group", "", "consumer group (empty reads without committing offsets)")
	cmd.AddCommand(tail)
	return cmd
}
