package pagination

const (
	// DefaultPage is the first page; pages are 1-indexed.
	DefaultPage = 1
	// DefaultPageSize matches the storefront grid of eight cards.
	DefaultPageSize = 8
	// MaxPageSize caps how many rows a single page can request.
	MaxPageSize = 48
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Page     int
	PageSize int
}

// Normalize replaces non-positive values with the defaults and caps the page size.
func (p Params) Normalize() Params {
	return Params{
		Page:     NormalizePage(p.Page),
		PageSize: NormalizePageSize(p.PageSize),
	}
}

// NormalizePage enforces a 1-indexed page number.
func NormalizePage(page int) int {
	if page <= 0 {
		return DefaultPage
	}
	return page
}

// NormalizePageSize enforces the default and maximum page sizes.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// TotalPages returns ceil(total/size). Zero matches yield zero pages.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total-1)/size + 1
}

// Bounds returns the half-open [start, end) slice window for the page, clamped to total.
// A page past the end yields start == end == total. Pages are compared before any
// multiplication so huge page numbers or sizes cannot overflow.
func Bounds(page, size, total int) (start, end int) {
	if total <= 0 || size <= 0 {
		return 0, 0
	}
	if page < 1 {
		page = 1
	}
	if page-1 >= TotalPages(total, size) {
		return total, total
	}
	start = (page - 1) * size
	if size >= total-start {
		return start, total
	}
	return start, start + size
}
