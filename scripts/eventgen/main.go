package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// eventgen produces Zipf-distributed test input for fs-probe: either a text
// file of "key weight" lines for file mode, or a pcap of TCP SYN packets whose
// source addresses follow the same skew for pcap mode.
func main() {
	outputFile := flag.String("o", "events.txt", "Output file path")
	format := flag.String("format", "text", "Output format: 'text' or 'pcap'")
	eventCount := flag.Int("c", 100000, "Number of events/packets to generate")
	keySpace := flag.Int("keys", 1000, "Number of distinct keys")
	skew := flag.Float64("skew", 1.2, "Zipf skew parameter (must be > 1)")
	flag.Parse()

	f, err := os.Create(*outputFile)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	zipf := rand.NewZipf(rng, *skew, 1, uint64(*keySpace-1))

	log.Printf("Generating %d %s events over %d keys into %s...", *eventCount, *format, *keySpace, *outputFile)

	switch *format {
	case "text":
		generateText(f, zipf, *eventCount)
	case "pcap":
		generatePcap(f, zipf, rng, *eventCount)
	default:
		log.Fatalf("Unknown format: %s. Use 'text' or 'pcap'", *format)
	}

	log.Printf("Successfully generated %d events into %s.", *eventCount, *outputFile)
}

// generateText writes "key weight" lines, one event per line.
func generateText(f *os.File, zipf *rand.Zipf, count int) {
	writer := bufio.NewWriter(f)
	defer writer.Flush()

	for i := 0; i < count; i++ {
		key := fmt.Sprintf("key-%05d", zipf.Uint64())
		if _, err := fmt.Fprintf(writer, "%s 1\n", key); err != nil {
			log.Fatalf("Failed to write event: %v", err)
		}
	}
}

// generatePcap writes TCP SYN packets whose source address encodes the key:
// the Zipf rank maps into 10.0.0.0/16.
func generatePcap(f *os.File, zipf *rand.Zipf, rng *rand.Rand, count int) {
	pcapWriter := pcapgo.NewWriter(f)
	if err := pcapWriter.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		log.Fatalf("Failed to write pcap header: %v", err)
	}

	for i := 0; i < count; i++ {
		if (i+1)%100000 == 0 {
			log.Printf("Generated %d packets...", i+1)
		}

		rank := zipf.Uint64()
		srcIP := net.IP{10, 0, byte(rank >> 8), byte(rank)}
		dstIP := net.IP{192, 168, 0, 1}

		ethLayer := &layers.Ethernet{
			SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
			DstMAC:       net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xAA},
			EthernetType: layers.EthernetTypeIPv4,
		}
		ipLayer := &layers.IPv4{
			SrcIP:    srcIP,
			DstIP:    dstIP,
			Version:  4,
			TTL:      64,
			Protocol: layers.IPProtocolTCP,
		}
		tcpLayer := &layers.TCP{
			SrcPort: layers.TCPPort(rng.Intn(65535-1024) + 1024),
			DstPort: 443,
			Seq:     rng.Uint32(),
			SYN:     true,
			Window:  14600,
		}
		tcpLayer.SetNetworkLayerForChecksum(ipLayer)

		buf := gopacket.NewSerializeBuffer()
		opts := gopacket.SerializeOptions{
			ComputeChecksums: true,
			FixLengths:       true,
		}
		if err := gopacket.SerializeLayers(buf, opts, ethLayer, ipLayer, tcpLayer); err != nil {
			log.Fatalf("Failed to serialize layers: %v", err)
		}

		ci := gopacket.CaptureInfo{
			Timestamp:     time.Now(),
			CaptureLength: len(buf.Bytes()),
			Length:        len(buf.Bytes()),
		}
		if err := pcapWriter.WritePacket(ci, buf.Bytes()); err != nil {
			log.Fatalf("Failed to write packet: %v", err)
		}
	}
}
