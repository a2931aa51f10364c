package productsController

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

// uniqueSlug derives a URL-safe slug from the product name. On
// collision a timestamp suffix makes the slug distinct instead of
// surfacing a write failure.
func uniqueSlug(name string, taken func(string) bool) string {
	s := slug.Make(name)
	if taken(s) {
		s = fmt.Sprintf("%s-%d", s, time.Now().UnixMilli())
	}
	return s
}
