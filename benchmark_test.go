package mxml_marks

import (
	"testing"
	"time"

	"github.com/ewhalen/mxml_marks/marks"
)

func BenchmarkNewMapperFrom(b *testing.B) {
	start := time.Now()
	for i := 0; i < b.N; i++ {
		if _, err := NewMapperFrom("technicals-vocab"); err != nil {
			b.Error(err)
		}
	}
	elapsed := time.Since(start)
	b.ReportMetric(float64(b.N)/elapsed.Seconds(), "builds/sec")
}

func BenchmarkMarkMapper_TokenForKind(b *testing.B) {
	b.StopTimer()
	mapper, err := NewMapperFrom("technicals-vocab")
	if err != nil {
		b.Error(err)
	}
	kinds := marks.Kinds()
	start := time.Now()
	b.StartTimer()
	resolved := 0
	for i := 0; i < b.N; i++ {
		for kindIdx := range kinds {
			if _, ok := mapper.TokenForKind(kinds[kindIdx]); ok {
				resolved++
			}
		}
	}
	b.StopTimer()
	elapsed := time.Since(start)
	b.ReportMetric(float64(b.N*len(kinds))/elapsed.Seconds(), "lookups/sec")
	b.ReportMetric(float64(resolved), "resolved")
	hits, misses := mapper.CacheStats()
	b.ReportMetric(float64(hits), "lru_hits")
	b.ReportMetric(float64(misses), "lru_misses")
}

func BenchmarkMarkMapper_TokenForKindUncached(b *testing.B) {
	b.StopTimer()
	kinds := marks.Kinds()
	mappers := make([]*MarkMapper, 0, b.N)
	for i := 0; i < b.N; i++ {
		mapper, err := NewMapperFrom("technicals-vocab")
		if err != nil {
			b.Error(err)
		}
		mappers = append(mappers, mapper)
	}
	start := time.Now()
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		for kindIdx := range kinds {
			mappers[i].TokenForKind(kinds[kindIdx])
		}
	}
	b.StopTimer()
	elapsed := time.Since(start)
	b.ReportMetric(float64(b.N*len(kinds))/elapsed.Seconds(), "lookups/sec")
}

func BenchmarkSplitDynamics(b *testing.B) {
	texts := []string{"pp", "fffp", "sfzp", "mpmf", "pppppppp", "rfzfp"}
	start := time.Now()
	for i := 0; i < b.N; i++ {
		for textIdx := range texts {
			SplitDynamics(texts[textIdx])
		}
	}
	elapsed := time.Since(start)
	b.ReportMetric(float64(b.N*len(texts))/elapsed.Seconds(), "splits/sec")
}
