// Package web builds links into the admin area.
package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/erp/backoffice/internal/application/returns"
)

// URLBuilder builds admin action URLs of the form
// <base>/<controller>/<action>[/<id>] with lower-cased path segments
type URLBuilder struct {
	base string
}

// NewURLBuilder creates a builder rooted at basePath, e.g. "/admin"
func NewURLBuilder(basePath string) *URLBuilder {
	return &URLBuilder{base: "/" + strings.Trim(basePath, "/")}
}

// Action builds the URL of a controller action; a zero id is omitted
func (b *URLBuilder) Action(action, controller string, id int64) string {
	segments := []string{strings.TrimSuffix(b.base, "/")}
	segments = append(segments, url.PathEscape(strings.ToLower(controller)), url.PathEscape(strings.ToLower(action)))
	if id != 0 {
		segments = append(segments, strconv.FormatInt(id, 10))
	}
	return strings.Join(segments, "/")
}

var _ returns.URLBuilder = (*URLBuilder)(nil)
