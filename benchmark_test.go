package tempuscache

import (
	"strconv"
	"testing"
)

func BenchmarkCache_Set(b *testing.B) {
	c, err := New(WithMaxKeys(100000))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set("key-"+strconv.Itoa(i), "value", 0)
	}
}

func BenchmarkCache_Get(b *testing.B) {
	c, err := New(WithMaxKeys(100000))
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 10000; i++ {
		c.Set("key-"+strconv.Itoa(i), "value", 0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key-" + strconv.Itoa(i%10000))
	}
}

func BenchmarkCache_SetWithEviction(b *testing.B) {
	c, err := New(WithMaxKeys(1000))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set("key-"+strconv.Itoa(i), "value", 0)
	}
}

func BenchmarkCache_SetWithTTL(b *testing.B) {
	c, err := New(WithMaxKeys(100000))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set("key-"+strconv.Itoa(i), "value", 60)
	}
}
