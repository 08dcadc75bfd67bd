package admin

// Model names used by the registrations
const (
	ModelSubject = "subject"
	ModelCourse  = "course"
	ModelModule  = "module"
	ModelContent = "content"
)

// Default returns the site with the catalog models registered
func Default() *Site {
	site := NewSite()

	site.MustRegister(&ModelAdmin{
		Name:               ModelSubject,
		Path:               "/api/v1/admin/subjects",
		ListDisplay:        []string{"title", "slug"},
		SearchFields:       []string{"title"},
		PrepopulatedFields: map[string][]string{"slug": {"title"}},
		Ordering:           []string{"title"},
	})

	site.MustRegister(&ModelAdmin{
		Name:               ModelCourse,
		Path:               "/api/v1/admin/courses",
		ListDisplay:        []string{"title", "subject", "created"},
		ListFilter:         []string{"created", "subject"},
		SearchFields:       []string{"title", "overview"},
		PrepopulatedFields: map[string][]string{"slug": {"title"}},
		Inlines:            []string{ModelModule},
		Ordering:           []string{"-created"},
	})

	site.MustRegister(&ModelAdmin{
		Name:        ModelModule,
		Path:        "/api/v1/admin/modules",
		ListDisplay: []string{"title", "course"},
		Ordering:    []string{"id"},
	})

	site.MustRegister(&ModelAdmin{
		Name:        ModelContent,
		Path:        "/api/v1/admin/contents",
		ListDisplay: []string{"module", "kind", "object"},
		ListFilter:  []string{"kind"},
		Ordering:    []string{"id"},
	})

	return site
}
