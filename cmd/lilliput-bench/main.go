// Command lilliput-bench generates a representative value tree, encodes
// it, and reports the wire size achieved both bare and wrapped through
// each envelope codec, verifying every round-trip along the way.
package main

import (
	"fmt"
	"log"

	"github.com/lilliput-fmt/lilliput"
	"github.com/lilliput-fmt/lilliput/envelope"
	"github.com/lilliput-fmt/lilliput/value"
)

func main() {
	fmt.Println("Lilliput Encoding Benchmark")
	fmt.Println("===========================")

	v := sampleValue()

	data, err := lilliput.Encode(v)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Encoded size: %d bytes\n", len(data))

	got, err := lilliput.Decode(data)
	if err != nil {
		log.Fatal(err)
	}
	if !v.Equal(got) {
		log.Fatal("round-trip mismatch")
	}
	fmt.Println("Core round-trip: OK")

	for _, codec := range []envelope.Codec{
		envelope.NoneCodec{},
		envelope.NewZstdCodec(),
		envelope.NewS2Codec(),
		envelope.NewLZ4Codec(),
	} {
		runEnvelope(codec, data)
	}
}

func runEnvelope(codec envelope.Codec, data []byte) {
	frame, err := envelope.Wrap(codec, data, true)
	if err != nil {
		log.Fatal(err)
	}

	ratio := float64(len(frame)) / float64(len(data))

	payload, err := envelope.Unwrap(frame)
	if err != nil {
		log.Fatal(err)
	}

	status := "OK"
	if len(payload) != len(data) {
		status = "MISMATCH"
	}

	fmt.Printf("%-5s frame=%6d bytes  ratio=%.2f  digest=%s\n", codec.ID(), len(frame), ratio, status)
}

func sampleValue() value.Value {
	points := make([]value.Value, 0, 32)
	for i := 0; i < 32; i++ {
		points = append(points, value.Map([]value.Pair{
			{Key: value.String("t"), Val: value.Int(int64(i * 1000))},
			{Key: value.String("v"), Val: value.Float(float64(i) * 0.5)},
		}))
	}

	return value.Map([]value.Pair{
		{Key: value.String("series"), Val: value.String("cpu.usage")},
		{Key: value.String("points"), Val: value.Sequence(points)},
	})
}
