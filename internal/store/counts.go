package store

import "context"

func (s *Store) CountProducts(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM products`)
}

func (s *Store) CountTestimonials(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM testimonials`)
}

// CountDemoRequests counts every request, or only those in status when it
// is non-empty.
func (s *Store) CountDemoRequests(ctx context.Context, status string) (int, error) {
	if status == "" {
		return s.count(ctx, `SELECT COUNT(*) FROM demo_requests`)
	}
	return s.count(ctx, `SELECT COUNT(*) FROM demo_requests WHERE status = ?`, status)
}
