package ledger

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

// statsWindow controls the shape of a CreatorStats reduction.
type statsWindow struct {
	Location *time.Location
	Months   int
	TopFilms int
	Recent   int
}

// reduceStats folds donations into CreatorStats. Rows after asOf are ignored.
// It performs no I/O; film titles are filled in by the caller.
func reduceStats(creatorID uuid.UUID, asOf time.Time, rows []domain.Donation, w statsWindow) domain.CreatorStats {
	stats := domain.CreatorStats{
		CreatorID:       creatorID,
		AsOf:            asOf,
		TotalGross:      decimal.Zero,
		TotalFees:       decimal.Zero,
		TotalNet:        decimal.Zero,
		AverageDonation: decimal.Zero,
		TopFilms:        []domain.FilmEarnings{},
		Monthly:         monthBuckets(asOf, w.Location, w.Months),
		RecentDonations: []domain.Donation{},
	}

	included := make([]domain.Donation, 0, len(rows))
	supporters := make(map[uuid.UUID]struct{})
	perFilm := make(map[uuid.UUID]*domain.FilmEarnings)

	for _, d := range rows {
		if d.CreatedAt.After(asOf) {
			continue
		}
		included = append(included, d)

		stats.TotalGross = stats.TotalGross.Add(d.Amount)
		stats.TotalFees = stats.TotalFees.Add(d.PlatformFee)
		supporters[d.DonorID] = struct{}{}

		if d.FilmID != nil {
			fe, ok := perFilm[*d.FilmID]
			if !ok {
				fe = &domain.FilmEarnings{FilmID: *d.FilmID, Gross: decimal.Zero, Net: decimal.Zero}
				perFilm[*d.FilmID] = fe
			}
			fe.Gross = fe.Gross.Add(d.Amount)
			fe.Net = fe.Net.Add(d.CreatorShare)
			fe.Count++
		}

		for i := range stats.Monthly {
			m := &stats.Monthly[i]
			if !d.CreatedAt.Before(m.Start) && d.CreatedAt.Before(m.End) {
				m.Gross = m.Gross.Add(d.Amount)
				m.Net = m.Net.Add(d.CreatorShare)
				m.Count++
				break
			}
		}
	}

	stats.TotalNet = stats.TotalGross.Sub(stats.TotalFees)
	stats.DonationCount = len(included)
	stats.UniqueSupporters = len(supporters)
	if stats.DonationCount > 0 {
		stats.AverageDonation = stats.TotalGross.
			Div(decimal.NewFromInt(int64(stats.DonationCount))).
			RoundBank(domain.MoneyScale)
	}

	stats.TopFilms = topFilms(perFilm, w.TopFilms)
	stats.RecentDonations = newest(included, w.Recent)

	return stats
}

// monthBuckets returns n consecutive calendar months ending with the month
// containing asOf, oldest first. Each bucket is [first instant, next first instant)
// in loc.
func monthBuckets(asOf time.Time, loc *time.Location, n int) []domain.MonthlyEarnings {
	if loc == nil {
		loc = time.UTC
	}
	local := asOf.In(loc)
	current := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)

	buckets := make([]domain.MonthlyEarnings, n)
	for i := range n {
		start := current.AddDate(0, i-(n-1), 0)
		buckets[i] = domain.MonthlyEarnings{
			Month: start.Format("2006-01"),
			Start: start,
			End:   start.AddDate(0, 1, 0),
			Gross: decimal.Zero,
			Net:   decimal.Zero,
		}
	}
	return buckets
}

// topFilms orders by gross desc, then count desc, then film id, and keeps n.
func topFilms(perFilm map[uuid.UUID]*domain.FilmEarnings, n int) []domain.FilmEarnings {
	films := make([]domain.FilmEarnings, 0, len(perFilm))
	for _, fe := range perFilm {
		films = append(films, *fe)
	}

	sort.Slice(films, func(i, j int) bool {
		a, b := films[i], films[j]
		if c := a.Gross.Cmp(b.Gross); c != 0 {
			return c > 0
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return bytes.Compare(a.FilmID[:], b.FilmID[:]) < 0
	})

	if len(films) > n {
		films = films[:n]
	}
	return films
}

// newest returns up to n donations ordered by created_at desc, id desc.
func newest(donations []domain.Donation, n int) []domain.Donation {
	sorted := make([]domain.Donation, len(donations))
	copy(sorted, donations)

	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return bytes.Compare(a.ID[:], b.ID[:]) > 0
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// reduceFilmTotals folds every donation of one film into FilmTotals.
func reduceFilmTotals(filmID uuid.UUID, rows []domain.Donation) domain.FilmTotals {
	totals := domain.FilmTotals{
		FilmID:     filmID,
		TotalGross: decimal.Zero,
		TotalFees:  decimal.Zero,
	}
	supporters := make(map[uuid.UUID]struct{})
	for _, d := range rows {
		totals.TotalGross = totals.TotalGross.Add(d.Amount)
		totals.TotalFees = totals.TotalFees.Add(d.PlatformFee)
		totals.DonationCount++
		supporters[d.DonorID] = struct{}{}
	}
	totals.TotalNet = totals.TotalGross.Sub(totals.TotalFees)
	totals.UniqueSupporters = len(supporters)
	return totals
}
