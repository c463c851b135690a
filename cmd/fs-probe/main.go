package main

import (
	v1 "Go2FreqSpectra/api/gen/v1"
	"Go2FreqSpectra/internal/config"
	"Go2FreqSpectra/internal/model"
	"Go2FreqSpectra/internal/probe"
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
)

func main() {
	// --- Command-Line Flag Parsing ---
	mode := flag.String("mode", "sub", "Operating mode: 'file' to publish events from a text file, 'pcap' to publish per-source-address events from a capture file, 'sub' to subscribe and print.")
	input := flag.String("input", "", "Input file: 'key weight' lines for file mode, a .pcap file for pcap mode.")
	bytes := flag.Bool("bytes", false, "In pcap mode, weight events by packet length instead of packet count.")
	flag.Parse()

	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// --- Mode Dispatch ---
	switch *mode {
	case "file":
		runFileProbe(cfg.Probe, *input)
	case "pcap":
		runPcapProbe(cfg.Probe, *input, *bytes)
	case "sub":
		runSubscriber(cfg.Probe)
	default:
		fmt.Fprintf(os.Stderr, "Invalid mode: %s\n", *mode)
		flag.Usage()
		os.Exit(1)
	}
}

// runFileProbe reads "key weight" lines from a file and publishes one event per line.
func runFileProbe(cfg config.ProbeConfig, path string) {
	if path == "" {
		log.Println("Error: -input flag is required for file mode.")
		flag.Usage()
		os.Exit(1)
	}
	log.Printf("Starting fs-probe in FILE mode with input: %s", path)

	pub, err := probe.NewPublisher(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer pub.Close()

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Error opening input file %s: %v", path, err)
	}
	defer file.Close()

	eventsPublished := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, weightField, hasWeight := strings.Cut(line, " ")
		weight := int64(1)
		if hasWeight {
			weight, err = strconv.ParseInt(strings.TrimSpace(weightField), 10, 64)
			if err != nil {
				log.Printf("Skipping malformed line %q: %v", line, err)
				continue
			}
		}

		ev := &model.Event{Timestamp: time.Now(), Key: key, Weight: weight}
		if err := pub.Publish(ev); err != nil {
			log.Printf("Failed to publish event: %v", err)
		}
		eventsPublished++
		if eventsPublished%1000 == 0 {
			log.Printf("%d events published...", eventsPublished)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Error reading input file: %v", err)
	}
	log.Printf("Done. %d events published.", eventsPublished)
}

// runPcapProbe replays a capture file, publishing one event per IP packet keyed
// by the source address.
func runPcapProbe(cfg config.ProbeConfig, path string, weightByBytes bool) {
	if path == "" {
		log.Println("Error: -input flag is required for pcap mode.")
		flag.Usage()
		os.Exit(1)
	}
	log.Printf("Starting fs-probe in PCAP mode with capture: %s", path)

	pub, err := probe.NewPublisher(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer pub.Close()

	handle, err := pcap.OpenOffline(path)
	if err != nil {
		log.Fatalf("Error opening capture %s: %v", path, err)
	}
	defer handle.Close()

	eventsPublished := 0
	packetSource := gopacket.NewPacketSource(handle, handle.LinkType())
	for packet := range packetSource.Packets() {
		key, ok := sourceAddress(packet)
		if !ok {
			continue // Skip non-IP packets
		}

		weight := int64(1)
		if weightByBytes {
			weight = int64(packet.Metadata().CaptureInfo.Length)
		}

		ev := &model.Event{
			Timestamp: packet.Metadata().CaptureInfo.Timestamp,
			Key:       key,
			Weight:    weight,
		}
		if err := pub.Publish(ev); err != nil {
			log.Printf("Failed to publish event: %v", err)
		}
		eventsPublished++
		if eventsPublished%1000 == 0 {
			log.Printf("%d events published...", eventsPublished)
		}
	}
	log.Printf("Done. %d events published.", eventsPublished)
}

// sourceAddress extracts the source IP from a packet.
func sourceAddress(packet gopacket.Packet) (string, bool) {
	if layer := packet.Layer(layers.LayerTypeIPv4); layer != nil {
		return layer.(*layers.IPv4).SrcIP.String(), true
	}
	if layer := packet.Layer(layers.LayerTypeIPv6); layer != nil {
		return layer.(*layers.IPv6).SrcIP.String(), true
	}
	return "", false
}

// runSubscriber contains the logic for subscribing to NATS and printing events.
func runSubscriber(cfg config.ProbeConfig) {
	log.Println("Starting fs-probe in SUBSCRIBER mode...")

	sub, err := probe.NewSubscriber(cfg)
	if err != nil {
		log.Fatalf("Failed to create subscriber: %v", err)
	}
	defer sub.Close()

	// Define the handler function for received events
	handler := func(ev *v1.Event) {
		log.Printf("Received Event: key=%s weight=%d at %s", ev.Key, ev.Weight, ev.Timestamp.AsTime().Format(time.RFC3339))
	}

	// Start listening for messages
	if err := sub.Start(handler); err != nil {
		log.Fatalf("Subscriber failed to start: %v", err)
	}

	// Set up a channel to handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Wait for a shutdown signal
	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
}
