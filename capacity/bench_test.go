package capacity_test

import (
	"context"
	"testing"

	"github.com/capacitylab/blahut/baa"
	"github.com/capacitylab/blahut/capacity"
	"github.com/capacitylab/blahut/channel"
)

// benchmarkStep measures one sharded BAA step on an n-bit deletion channel
// with the given worker count, against the serial core as the 1-worker case.
func benchmarkStep(b *testing.B, inBits, workers int) {
	model := channel.Deletion(0.1)
	transmitted, err := channel.Enumerate(inBits)
	if err != nil {
		b.Fatalf("enumerate: %v", err)
	}
	received, err := channel.EnumerateUpTo(inBits)
	if err != nil {
		b.Fatalf("enumerate up-to: %v", err)
	}
	q := baa.Uniform(len(transmitted))
	opts := baa.DefaultOptions()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := capacity.Step(ctx, model, transmitted, received, q, opts, workers); err != nil {
			b.Fatalf("Step failed: %v", err)
		}
	}
}

// BenchmarkStep_Deletion6_Serial is the single-shard baseline.
func BenchmarkStep_Deletion6_Serial(b *testing.B) { benchmarkStep(b, 6, 1) }

// BenchmarkStep_Deletion6_4Workers shards across four workers.
func BenchmarkStep_Deletion6_4Workers(b *testing.B) { benchmarkStep(b, 6, 4) }

// BenchmarkStep_Deletion8_8Workers: 256 inputs, 511 outputs, eight shards.
func BenchmarkStep_Deletion8_8Workers(b *testing.B) { benchmarkStep(b, 8, 8) }
