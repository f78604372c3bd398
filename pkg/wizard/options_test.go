package wizard

import "testing"

func TestOptionsDefaults(t *testing.T) {
	opts := DefaultOptions()
	if !opts.ShouldIncludeConditionalFormats() {
		t.Error("conditional formats should be included by default")
	}
	if !opts.ShouldIncludeLayout() {
		t.Error("layout should be included by default")
	}
	if !opts.ShouldUseSourceNameForSingleTable() {
		t.Error("single-table inputs should be titled after the input by default")
	}
	if opts.cellFailure() != FailSheet {
		t.Errorf("default cell failure policy = %q, expected %q", opts.cellFailure(), FailSheet)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("default options are invalid: %v", err)
	}
	if opts.Limits.MaxUnzippedBytes <= opts.Limits.MaxInputBytes {
		t.Errorf("default unzipped limit %d should exceed the input limit %d",
			opts.Limits.MaxUnzippedBytes, opts.Limits.MaxInputBytes)
	}
	if (Options{}).cellFailure() != FailSheet {
		t.Error("empty policy should mean FailSheet")
	}
}

func TestOptionsOverrides(t *testing.T) {
	f := false
	opts := Options{
		IncludeConditionalFormats: &f,
		IncludeLayout:             &f,
		SingleTableUsesSourceName: &f,
	}
	if opts.ShouldIncludeConditionalFormats() || opts.ShouldIncludeLayout() || opts.ShouldUseSourceNameForSingleTable() {
		t.Error("explicit false overrides were ignored")
	}
}
