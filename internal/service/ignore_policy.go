package service

import "strings"

// IgnorePolicy holds the deployment's ignore lists: subject labels that carry
// no teaching assignment (breaks, ceremonies, mandatory extracurriculars) and
// teacher codes that name non-teaching roles. Subjects match by
// case-insensitive substring containment, teacher codes by exact equality.
type IgnorePolicy struct {
	subjects  []string
	teachers  map[string]struct{}
	teacherls []string
	noTeacher string
}

// NewIgnorePolicy builds a policy from configured lists. noTeacher is the
// sentinel code written into slots that resolve to no teacher.
func NewIgnorePolicy(subjects, teachers []string, noTeacher string) IgnorePolicy {
	if noTeacher == "" {
		noTeacher = "-"
	}
	set := make(map[string]struct{}, len(teachers))
	for _, code := range teachers {
		set[code] = struct{}{}
	}
	return IgnorePolicy{
		subjects:  subjects,
		teachers:  set,
		teacherls: teachers,
		noTeacher: noTeacher,
	}
}

// NoTeacher returns the sentinel teacher code.
func (p IgnorePolicy) NoTeacher() string {
	return p.noTeacher
}

// IgnoredSubject reports whether the label matches any ignored subject.
func (p IgnorePolicy) IgnoredSubject(label string) bool {
	upper := strings.ToUpper(label)
	for _, ignored := range p.subjects {
		if strings.Contains(upper, strings.ToUpper(ignored)) {
			return true
		}
	}
	return false
}

// IgnoredTeacher reports whether the code names a non-teaching role.
func (p IgnorePolicy) IgnoredTeacher(code string) bool {
	_, ok := p.teachers[code]
	return ok
}

// IgnoredTeachers returns the configured code list, for the conflict detector.
func (p IgnorePolicy) IgnoredTeachers() []string {
	return p.teacherls
}

// IgnoredSubjects returns the configured label list.
func (p IgnorePolicy) IgnoredSubjects() []string {
	return p.subjects
}
