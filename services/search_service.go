package services

import (
	"context"
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"

	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/logger"
)

// SearchService answers fuzzy name lookups over students and hostels.
// Matching is in-process: names are unaccented and lowercased, candidate
// sets come from a bag-of-ngrams matcher and the final ranking uses
// levenshtein similarity.
type SearchService struct {
	db     *gorm.DB
	logger logger.Logger
}

type SearchServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewSearchService(opts SearchServiceOptions) *SearchService {
	return &SearchService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// SearchHit is one ranked match.
type SearchHit struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Code  string  `json:"code,omitempty"`
	Score float64 `json:"score"`
}

const minSimilarity = 0.3

// SearchStudents matches a free-text query against student names and codes.
func (s *SearchService) SearchStudents(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	var students []models.Student
	err := s.db.WithContext(ctx).
		Select("id", "name", "student_code").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return rankStudents(students, query, limit), nil
}

func rankStudents(students []models.Student, query string, limit int) []SearchHit {
	// Distinct students can share a name, so every key maps to a group.
	keys := make([]string, 0, len(students))
	byKey := make(map[string][]models.Student, len(students))
	for _, st := range students {
		key := NormalizeQuery(st.Name)
		if key == "" {
			continue
		}
		if _, ok := byKey[key]; !ok {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], st)
	}

	hits := rankMatches(query, keys, limit, func(key string, score float64) []SearchHit {
		group := byKey[key]
		out := make([]SearchHit, 0, len(group))
		for _, st := range group {
			out = append(out, SearchHit{ID: st.ID, Name: st.Name, Code: st.StudentCode, Score: score})
		}
		return out
	})

	// A student code typed verbatim always wins.
	code := strings.ToUpper(strings.TrimSpace(query))
	for _, st := range students {
		if st.StudentCode == code {
			hits = append([]SearchHit{{ID: st.ID, Name: st.Name, Code: st.StudentCode, Score: 1}}, hits...)
			break
		}
	}
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

// SearchHostels matches a free-text query against hostel names.
func (s *SearchService) SearchHostels(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	var hostels []models.Hostel
	err := s.db.WithContext(ctx).
		Select("id", "name").
		Find(&hostels).Error
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(hostels))
	byKey := make(map[string][]models.Hostel, len(hostels))
	for _, h := range hostels {
		key := NormalizeQuery(h.Name)
		if key == "" {
			continue
		}
		if _, ok := byKey[key]; !ok {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], h)
	}

	return rankMatches(query, keys, limit, func(key string, score float64) []SearchHit {
		group := byKey[key]
		out := make([]SearchHit, 0, len(group))
		for _, h := range group {
			out = append(out, SearchHit{ID: h.ID, Name: h.Name, Score: score})
		}
		return out
	}), nil
}

// NormalizeQuery strips accents, lowercases and trims the input.
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// Similarity scores two strings in [0, 1] from their edit distance.
func Similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len([]rune(a)))
	if l := float64(len([]rune(b))); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

func rankMatches(query string, keys []string, limit int, build func(key string, score float64) []SearchHit) []SearchHit {
	normalized := NormalizeQuery(query)
	if normalized == "" || len(keys) == 0 || limit <= 0 {
		return []SearchHit{}
	}

	matcher := closestmatch.New(keys, []int{2, 3})
	candidates := matcher.ClosestN(normalized, limit*3)

	seen := make(map[string]bool)
	hits := make([]SearchHit, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true

		score := Similarity(normalized, candidate)
		if strings.Contains(candidate, normalized) && score < 0.9 {
			// Substring hits stay relevant even when lengths differ a lot.
			score = 0.9
		}
		if score < minSimilarity {
			continue
		}
		hits = append(hits, build(candidate, score)...)
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}
