package cache

import (
	"testing"
	"time"
)

func TestNewCache(t *testing.T) {
	c := NewCache()
	if c == nil {
		t.Fatal("NewCache returned nil")
	}
	if c.ns == "" {
		t.Error("NewCache: namespace must not be empty")
	}
	if NewCache().ns == c.ns {
		t.Error("NewCache: namespaces must be unique per instance")
	}
}

func TestForStore_SameHandleSharesCache(t *testing.T) {
	storeA, storeB := &struct{ name string }{"a"}, &struct{ name string }{"b"}
	if ForStore(storeA) != ForStore(storeA) {
		t.Error("ForStore: same handle must return same cache")
	}
	if ForStore(storeA) == ForStore(storeB) {
		t.Error("ForStore: distinct handles must return distinct caches")
	}
}

func TestForStore_EntriesDoNotCrossStores(t *testing.T) {
	storeA, storeB := &struct{ name string }{"a"}, &struct{ name string }{"b"}
	ForStore(storeA).Set("k", "from-a", 0, nil)
	if _, ok := ForStore(storeB).Get("k"); ok {
		t.Error("ForStore: entry written for one store served for another")
	}
}

func TestSet_Get(t *testing.T) {
	c := NewCache()
	key := "test-set-get"
	c.Set(key, "val", 0, nil)
	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
}

func TestGet_Missing(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("nonexistent-key-xyz"); ok {
		t.Error("Get missing key: want false")
	}
}

func TestGet_Expired(t *testing.T) {
	c := NewCache()
	key := "test-expired"
	// force the entry past its TTL without sleeping a full second
	c.m.Store(key, cacheItem{Value: "val", ExpiresAt: time.Now().Add(-time.Second).UnixNano()})
	if _, ok := c.Get(key); ok {
		t.Error("Get expired key: want false")
	}
}

func TestDelete(t *testing.T) {
	c := NewCache()
	key := "test-delete"
	c.Set(key, "x", 0, nil)
	c.Delete(key)
	if _, ok := c.Get(key); ok {
		t.Error("Delete: key should be gone")
	}
}

func TestGetJSON(t *testing.T) {
	c := NewCache()
	key := "test-json"
	c.Set(key, []int{1, 2, 3}, 0, nil)
	var got []int
	if !c.GetJSON(key, &got) {
		t.Fatal("GetJSON: want true")
	}
	if len(got) != 3 || got[2] != 3 {
		t.Errorf("GetJSON = %v, want [1 2 3]", got)
	}
}

func TestMakeKey(t *testing.T) {
	if got := MakeKey("search", "Widget"); got != "search|Widget" {
		t.Errorf("MakeKey = %q, want search|Widget", got)
	}
	if got := MakeKey("lowstock", 5); got != "lowstock|5" {
		t.Errorf("MakeKey = %q, want lowstock|5", got)
	}
}

func TestTagKey_GetKeysByTag_DeleteByTag(t *testing.T) {
	c := NewCache()
	key1, key2 := "tag-k1", "tag-k2"
	c.Set(key1, "v1", 0, []string{"t1"})
	c.Set(key2, "v2", 0, []string{"t1"})

	keys := c.GetKeysByTag("t1")
	if len(keys) != 2 {
		t.Errorf("GetKeysByTag = %d keys, want 2", len(keys))
	}

	c.DeleteByTag("t1")
	if _, ok := c.Get(key1); ok {
		t.Error("DeleteByTag: key1 should be gone")
	}
	if _, ok := c.Get(key2); ok {
		t.Error("DeleteByTag: key2 should be gone")
	}
	if len(c.GetKeysByTag("t1")) != 0 {
		t.Error("DeleteByTag: tag index should be empty")
	}
}
