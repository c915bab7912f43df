package cache

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/acharyaarish/Inventory-Management/config"
)

// Cache is a thread-safe key-value store used for catalog read results.
// Entries carry an optional TTL and optional tags; invalidating a tag drops
// every entry carrying it. When Redis is configured (config.InitRedis), each
// entry is mirrored there under a namespace unique to this Cache instance,
// so the Redis tier never serves entries written for another store or by a
// previous run.
type Cache struct {
	ns string
	m  sync.Map
	// tagIndex maps tag string to a set of keys
	tagIndex sync.Map // map[string]*sync.Map
}

// stores maps a store handle (e.g. a *gorm.DB) to its Cache.
var stores sync.Map

// ForStore returns the cache shared by every repository over the same store
// handle. Distinct stores get distinct caches, so cached reads can never
// cross from one store to another.
func ForStore(store interface{}) *Cache {
	if c, ok := stores.Load(store); ok {
		return c.(*Cache)
	}
	c, _ := stores.LoadOrStore(store, NewCache())
	return c.(*Cache)
}

// NewCache creates a new Cache instance with its own Redis namespace.
func NewCache() *Cache {
	return &Cache{ns: uuid.NewString() + "|"}
}

// cacheItem holds a value and its expiration time.
type cacheItem struct {
	Value     interface{}
	ExpiresAt int64 // Unix timestamp in nanoseconds; 0 means no expiration
}

// Set stores a value for a key with an optional TTL (in seconds) and optional
// tags. If ttl is 0, the value does not expire.
func (c *Cache) Set(key string, value interface{}, ttl int64, tags []string) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(time.Duration(ttl) * time.Second).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
	if len(tags) > 0 {
		c.TagKey(key, tags)
	}
	if config.RedisClient != nil {
		if data, err := json.Marshal(value); err == nil {
			config.RedisClient.Set(config.RedisCtx(), c.ns+key, data, time.Duration(ttl)*time.Second)
		}
	}
}

// Get retrieves a value for a key. Returns (value, true) if found and not
// expired, (nil, false) otherwise. Only the in-process tier is consulted;
// use GetJSON for the Redis tier.
func (c *Cache) Get(key string) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	item := v.(cacheItem)
	if item.ExpiresAt > 0 && time.Now().UnixNano() > item.ExpiresAt {
		c.m.Delete(key)
		return nil, false
	}
	return item.Value, true
}

// GetJSON retrieves a value into dest, falling back to the Redis tier on a
// local miss. The namespace restricts the fallback to entries this Cache
// instance wrote itself. Returns true when dest was populated.
func (c *Cache) GetJSON(key string, dest interface{}) bool {
	if v, ok := c.Get(key); ok {
		data, err := json.Marshal(v)
		if err != nil {
			return false
		}
		return json.Unmarshal(data, dest) == nil
	}
	if config.RedisClient == nil {
		return false
	}
	data, err := config.RedisClient.Get(config.RedisCtx(), c.ns+key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// Delete removes a key from the cache and the Redis tier.
func (c *Cache) Delete(key string) {
	c.m.Delete(key)
	if config.RedisClient != nil {
		config.RedisClient.Del(config.RedisCtx(), c.ns+key)
	}
}

// MakeKey builds a composite cache key from parts.
func MakeKey(parts ...interface{}) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = fmt.Sprintf("%v", p)
	}
	return strings.Join(strs, "|")
}

// TagKey assigns one or more tags to a cache key.
func (c *Cache) TagKey(key string, tags []string) {
	for _, tag := range tags {
		val, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		km := val.(*sync.Map)
		km.Store(key, struct{}{})
	}
}

// GetKeysByTag returns all keys assigned to a tag.
func (c *Cache) GetKeysByTag(tag string) []string {
	var keys []string
	if val, ok := c.tagIndex.Load(tag); ok {
		km := val.(*sync.Map)
		km.Range(func(key, _ interface{}) bool {
			keys = append(keys, key.(string))
			return true
		})
	}
	return keys
}

// DeleteByTag deletes all cache entries assigned to a tag.
func (c *Cache) DeleteByTag(tag string) {
	if val, ok := c.tagIndex.Load(tag); ok {
		km := val.(*sync.Map)
		km.Range(func(key, _ interface{}) bool {
			c.Delete(key.(string))
			km.Delete(key)
			return true
		})
		c.tagIndex.Delete(tag)
	}
}
