package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

var OptionsCache = cache.New(1*time.Minute, 2*time.Minute)
var RateLimiterCache = cache.New(10*time.Minute, 15*time.Minute)
