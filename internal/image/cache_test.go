package image

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)

	if _, err := c.Get(ctx, "a"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
	_ = c.Set(ctx, "a", &Image{Data: []byte("A"), ContentType: "image/png"})
	_ = c.Set(ctx, "b", &Image{Data: []byte("B")})

	img, err := c.Get(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if string(img.Data) != "A" || img.ContentType != "image/png" {
		t.Errorf("got %+v", img)
	}

	// "a" was used more recently, so "b" is evicted.
	_ = c.Set(ctx, "c", &Image{Data: []byte("C")})
	if _, err := c.Get(ctx, "b"); !errors.Is(err, ErrCacheMiss) {
		t.Error("b should have been evicted")
	}
	if _, err := c.Get(ctx, "a"); err != nil {
		t.Error("a should still be cached")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestMemoryCache_Overwrite(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(1)
	_ = c.Set(ctx, "a", &Image{Data: []byte("old")})
	_ = c.Set(ctx, "a", &Image{Data: []byte("new")})
	img, err := c.Get(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if string(img.Data) != "new" || c.Len() != 1 {
		t.Errorf("got %q with len %d", img.Data, c.Len())
	}
}

func TestEncodeDecodeImage(t *testing.T) {
	in := &Image{Data: []byte("line1\nline2"), ContentType: "image/jpeg"}
	out, ok := decodeImage(encodeImage(in))
	if !ok {
		t.Fatal("decode failed")
	}
	if out.ContentType != "image/jpeg" || string(out.Data) != "line1\nline2" {
		t.Errorf("got %+v", out)
	}
	if _, ok := decodeImage([]byte("garbage")); ok {
		t.Error("value without separator should not decode")
	}
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	start := time.Now()
	_, err := NewRedisCache(RedisConfig{Addr: "127.0.0.1:1"})
	if err == nil {
		t.Fatal("expected ping error for unreachable redis")
	}
	if time.Since(start) > 10*time.Second {
		t.Error("ping should give up within its timeout")
	}
}
