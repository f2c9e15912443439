package scheduler

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/NamiSwwaan/crewplan/internal/domain"
)

var (
	// ErrEmptyTask indicates a blank task description was given to the ranker.
	ErrEmptyTask = errors.New("task description cannot be empty")

	// ErrNoEmployees indicates an empty roster was given to the ranker.
	ErrNoEmployees = errors.New("employees must be a non-empty list")
)

// RankedEmployee pairs an employee with a similarity score in [0, 1].
type RankedEmployee struct {
	Employee domain.Employee
	Score    float64
}

// RankEmployees scores each employee's expertise text against the task
// description and returns the roster sorted by score descending (stable for
// ties). Scoring is TF-IDF cosine similarity with English stop-words
// removed. Ranking is advisory: any internal scoring failure degrades to
// all-zero scores rather than propagating.
func RankEmployees(task string, employees []domain.Employee) ([]RankedEmployee, error) {
	if strings.TrimSpace(task) == "" {
		return nil, ErrEmptyTask
	}
	if len(employees) == 0 {
		return nil, ErrNoEmployees
	}

	texts := make([]string, len(employees))
	anyText := false
	for i, emp := range employees {
		texts[i] = emp.ExpertiseText()
		if strings.TrimSpace(texts[i]) != "" {
			anyText = true
		}
	}
	if !anyText {
		return zeroScores(employees), nil
	}

	scores := similarityScores(task, texts)
	if scores == nil {
		return zeroScores(employees), nil
	}

	ranked := make([]RankedEmployee, len(employees))
	for i, emp := range employees {
		ranked[i] = RankedEmployee{Employee: emp, Score: scores[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}

func zeroScores(employees []domain.Employee) []RankedEmployee {
	ranked := make([]RankedEmployee, len(employees))
	for i, emp := range employees {
		ranked[i] = RankedEmployee{Employee: emp}
	}
	return ranked
}

// similarityScores returns the cosine similarity between the task vector
// and each employee vector, or nil if scoring fails.
func similarityScores(task string, employeeTexts []string) (scores []float64) {
	// Degrade, never propagate: the caller substitutes zero scores.
	defer func() {
		if r := recover(); r != nil {
			scores = nil
		}
	}()

	docs := make([][]string, 0, len(employeeTexts)+1)
	docs = append(docs, tokenize(task))
	for _, text := range employeeTexts {
		docs = append(docs, tokenize(text))
	}

	vocab, docFreq := buildVocabulary(docs)
	if len(vocab) == 0 {
		return nil
	}

	n := len(docs)
	vectors := make([][]float64, n)
	for i, doc := range docs {
		vectors[i] = tfidfVector(doc, vocab, docFreq, n)
	}

	taskVec := vectors[0]
	scores = make([]float64, len(employeeTexts))
	for i := range employeeTexts {
		scores[i] = dot(taskVec, vectors[i+1])
	}
	return scores
}

// tokenize lowercases, splits on non-alphanumeric runes, and drops
// stop-words and single characters.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 || englishStopWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// buildVocabulary assigns an index to each distinct term and counts how
// many documents contain it.
func buildVocabulary(docs [][]string) (map[string]int, []int) {
	vocab := make(map[string]int)
	var docFreq []int
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			if seen[term] {
				continue
			}
			seen[term] = true
			idx, ok := vocab[term]
			if !ok {
				idx = len(vocab)
				vocab[term] = idx
				docFreq = append(docFreq, 0)
			}
			docFreq[idx]++
		}
	}
	return vocab, docFreq
}

// tfidfVector builds an L2-normalized TF-IDF vector with smoothed inverse
// document frequency: idf = ln((1+n)/(1+df)) + 1.
func tfidfVector(doc []string, vocab map[string]int, docFreq []int, numDocs int) []float64 {
	vec := make([]float64, len(vocab))
	for _, term := range doc {
		vec[vocab[term]]++
	}

	norm := 0.0
	for idx := range vec {
		if vec[idx] == 0 {
			continue
		}
		idf := math.Log(float64(1+numDocs)/float64(1+docFreq[idx])) + 1
		vec[idx] *= idf
		norm += vec[idx] * vec[idx]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
