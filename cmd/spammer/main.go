// Spammer is a load generator: it writes generated valid order documents
// to the orders topic at a fixed rate.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/shuklarituparn/order-service/internal/domain"
)

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma-separated kafka brokers")
	topic := flag.String("topic", "orders", "kafka topic")
	rate := flag.Int("rate", 10, "messages per second")
	duration := flag.Duration("duration", 30*time.Second, "how long to spam")
	flag.Parse()

	if *rate < 1 {
		log.Fatalf("rate must be positive, got %d", *rate)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:        *topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    100,
	}
	defer writer.Close()

	log.Printf("spamming %s at %d msg/s for %v", *topic, *rate, *duration)

	ticker := time.NewTicker(time.Second / time.Duration(*rate))
	defer ticker.Stop()
	deadline := time.NewTimer(*duration)
	defer deadline.Stop()

	var sent int64
	start := time.Now()
	for {
		select {
		case <-ticker.C:
			order := generateOrder()
			value, err := json.Marshal(order)
			if err != nil {
				log.Printf("marshal: %v", err)
				continue
			}
			err = writer.WriteMessages(ctx, kafka.Message{
				Key:   []byte(order.OrderUID),
				Value: value,
				Time:  time.Now(),
			})
			if err != nil {
				log.Printf("write: %v", err)
				continue
			}
			sent++
		case <-deadline.C:
			log.Printf("done: sent %d messages in %v", sent, time.Since(start).Round(time.Millisecond))
			return
		case <-ctx.Done():
			log.Printf("interrupted: sent %d messages", sent)
			return
		}
	}
}

func generateOrder() domain.Order {
	uid := fmt.Sprintf("spam-%d-%04d", time.Now().UnixNano(), rand.Intn(10000))
	track := fmt.Sprintf("TRACK%06d", rand.Intn(1000000))
	return domain.Order{
		OrderUID:    uid,
		TrackNumber: track,
		Entry:       "WBIL",
		Delivery: domain.Delivery{
			Name:    "Test Testov",
			Phone:   "+9720000000",
			Zip:     "2639809",
			City:    "Kiryat Mozkin",
			Address: "Ploshad Mira 15",
			Region:  "Kraiot",
			Email:   "test@gmail.com",
		},
		Payment: domain.Payment{
			Transaction:  uid,
			Currency:     "USD",
			Provider:     "wbpay",
			Amount:       int64(rand.Intn(5000) + 1),
			PaymentDT:    time.Now().Unix(),
			Bank:         "alpha",
			DeliveryCost: 1500,
			GoodsTotal:   317,
		},
		Items: []domain.Item{
			{
				ChrtID:      int64(rand.Intn(10000000) + 1),
				TrackNumber: track,
				Price:       int64(rand.Intn(1000) + 1),
				RID:         fmt.Sprintf("rid-%d", rand.Intn(1000000)),
				Name:        "Mascaras",
				Sale:        30,
				Size:        "0",
				TotalPrice:  317,
				NmID:        2389212,
				Brand:       "Vivienne Sabo",
				Status:      202,
			},
		},
		Locale:          "en",
		CustomerID:      "test",
		DeliveryService: "meest",
		ShardKey:        "9",
		SmID:            99,
		DateCreated:     time.Now().UTC().Format(time.RFC3339),
		OofShard:        "1",
	}
}
