package productinfo

import "testing"

func TestInjectedValuesTakePrecedence(t *testing.T) {
	cases := []struct {
		name     string
		slot     *string
		accessor func() (string, bool)
	}{
		{"Title", &title, Title},
		{"Description", &description, Description},
		{"Configuration", &configuration, Configuration},
		{"Company", &company, Company},
		{"Product", &product, Product},
		{"Copyright", &copyright, Copyright},
		{"Trademark", &trademark, Trademark},
		{"Culture", &culture, Culture},
		{"Version", &version, Version},
		{"FileVersion", &fileVersion, FileVersion},
	}
	for _, tc := range cases {
		old := *tc.slot
		*tc.slot = "injected-" + tc.name
		got, ok := tc.accessor()
		*tc.slot = old
		if !ok || got != "injected-"+tc.name {
			t.Fatalf("%s = %q, %v, want injected value", tc.name, got, ok)
		}
	}
}

func TestUnmappedFieldsReportAbsent(t *testing.T) {
	// These have no build-info fallback, so without injection they are absent.
	cases := []struct {
		name     string
		accessor func() (string, bool)
	}{
		{"Description", Description},
		{"Company", Company},
		{"Copyright", Copyright},
		{"Trademark", Trademark},
		{"Culture", Culture},
	}
	for _, tc := range cases {
		if got, ok := tc.accessor(); ok || got != "" {
			t.Fatalf("%s = %q, %v, want absent", tc.name, got, ok)
		}
	}
}

func TestTitleFallsBackToModulePath(t *testing.T) {
	got, ok := Title()
	if !ok || got == "" {
		t.Fatalf("Title = %q, %v, want a module-derived fallback", got, ok)
	}
}
