package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CategoriesKey returns the cache key for the public category listing
func (r *CacheKeyStruct) CategoriesKey() string {
	return "catalog:categories"
}

// ProductsByCategoryKey returns the cache key for a category's product listing
func (r *CacheKeyStruct) ProductsByCategoryKey(slug string) string {
	return fmt.Sprintf("catalog:category:%s:products", slug)
}

// HomepageKey returns the cache key for the public homepage payload
func (r *CacheKeyStruct) HomepageKey() string {
	return "homepage:sections"
}

var CacheKey = NewCacheKeyStruct()
