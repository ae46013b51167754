// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// SeedFromString превращает строковый сид из определений в числовой.
// Пустая строка даёт 0, то есть сид по времени.
func SeedFromString(s string) int64 {
	if s == "" {
		return 0
	}
	return int64(xxhash.Sum64String(s) >> 1)
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntInclusive возвращает случайное целое число в диапазоне [lo, hi], обе границы включены.
func (s *PRNGService) IntInclusive(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}
