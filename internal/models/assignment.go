package models

import (
	"strconv"
	"strings"
	"unicode"
)

// TeachingAssignment links a teacher code to a subject and the tiers the
// pairing applies to. Assignments are the roster consulted when a schedule
// cell is edited; they are never deleted as a side effect of schedule edits.
type TeachingAssignment struct {
	ID           string `json:"id"`
	TeacherCode  string `json:"teacher_code"`
	TeacherName  string `json:"teacher_name"`
	SubjectName  string `json:"subject_name"`
	TeachesInMTs bool   `json:"teaches_in_mts"`
	TeachesInMA  bool   `json:"teaches_in_ma"`
}

// TeachesIn reports whether the assignment applies to the given tier.
func (a TeachingAssignment) TeachesIn(tier Tier) bool {
	if tier == TierMTs {
		return a.TeachesInMTs
	}
	return a.TeachesInMA
}

// AssignmentLess orders the roster by teacher code (numeric-aware, so G2
// sorts before G10) and then by subject name.
func AssignmentLess(a, b TeachingAssignment) bool {
	if c := compareNatural(a.TeacherCode, b.TeacherCode); c != 0 {
		return c < 0
	}
	return a.SubjectName < b.SubjectName
}

// compareNatural compares strings segment-wise, treating digit runs as numbers.
func compareNatural(a, b string) int {
	for a != "" && b != "" {
		aNum, aRest, aIsNum := nextSegment(a)
		bNum, bRest, bIsNum := nextSegment(b)
		if aIsNum && bIsNum {
			an, _ := strconv.Atoi(aNum)
			bn, _ := strconv.Atoi(bNum)
			if an != bn {
				if an < bn {
					return -1
				}
				return 1
			}
		} else if c := strings.Compare(aNum, bNum); c != 0 {
			return c
		}
		a, b = aRest, bRest
	}
	return strings.Compare(a, b)
}

func nextSegment(s string) (segment, rest string, numeric bool) {
	if s == "" {
		return "", "", false
	}
	numeric = unicode.IsDigit(rune(s[0]))
	i := 0
	for i < len(s) && unicode.IsDigit(rune(s[i])) == numeric {
		i++
	}
	return s[:i], s[i:], numeric
}

// Pagination carries paging metadata in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
