package validator

import (
	"strings"
	"testing"
)

func TestCheckStructure(t *testing.T) {
	valid := `import org.junit.jupiter.api.Test;
import static org.junit.jupiter.api.Assertions.*;

public class CalculatorTest {
  @Test
  void addsTwoNumbers() {
    assertEquals(4, new Calculator().add(2, 2));
  }
}`

	tests := []struct {
		name        string
		code        string
		targetClass string
		wantErrs    []string
		wantWarns   []string
		wantSugs    []string
	}{
		{
			name:        "well formed test class",
			code:        valid,
			targetClass: "Calculator",
		},
		{
			name:        "missing import and test methods",
			code:        "public class Calc { void run(){} }",
			targetClass: "",
			wantErrs: []string{
				"missing JUnit 5 import",
				"no @Test annotated methods",
			},
			wantWarns: []string{`"Calc" should end with "Test"`},
		},
		{
			name:        "no public class skips derived checks",
			code:        "class calc {}",
			targetClass: "Calculator",
			wantErrs: []string{
				"missing JUnit 5 import",
				"no public class declaration",
				"no @Test annotated methods",
			},
		},
		{
			name:        "static assertions import satisfies the import check",
			code:        "import static org.junit.jupiter.api.Assertions.*;\npublic class FooTest {\n  @Test void t() {}\n}",
			targetClass: "Foo",
		},
		{
			name:        "target name mismatch is a suggestion only",
			code:        "import org.junit.jupiter.api.Test;\npublic class WidgetSpecTest {\n  @Test void t() {}\n}",
			targetClass: "Gadget",
			wantSugs:    []string{`naming the test class "GadgetTest"`},
		},
		{
			name:        "main method is a warning",
			code:        "import org.junit.jupiter.api.Test;\npublic class FooTest {\n  @Test void t() {}\n  public static void main(String[] args) {}\n}",
			targetClass: "Foo",
			wantWarns:   []string{"should not declare a main method"},
		},
		{
			name:        "mockito calls without import",
			code:        "import org.junit.jupiter.api.Test;\npublic class FooTest {\n  @Test void t() { when(dep.get()).thenReturn(1); }\n}",
			targetClass: "Foo",
			wantWarns:   []string{"no org.mockito import"},
		},
		{
			name:        "mockito calls with import are fine",
			code:        "import org.junit.jupiter.api.Test;\nimport org.mockito.Mockito;\npublic class FooTest {\n  @Test void t() { verify(dep).get(); }\n}",
			targetClass: "Foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, warns, sugs := checkStructure(tt.code, tt.targetClass)
			assertContainsAll(t, "errors", errs, tt.wantErrs)
			assertContainsAll(t, "warnings", warns, tt.wantWarns)
			assertContainsAll(t, "suggestions", sugs, tt.wantSugs)
			if len(tt.wantErrs) != len(errs) {
				t.Errorf("got %d errors %v, want %d", len(errs), errs, len(tt.wantErrs))
			}
			if len(tt.wantWarns) != len(warns) {
				t.Errorf("got %d warnings %v, want %d", len(warns), warns, len(tt.wantWarns))
			}
			if len(tt.wantSugs) != len(sugs) {
				t.Errorf("got %d suggestions %v, want %d", len(sugs), sugs, len(tt.wantSugs))
			}
		})
	}
}

// assertContainsAll checks that every wanted fragment appears in some entry.
func assertContainsAll(t *testing.T, kind string, got, wantFragments []string) {
	t.Helper()
	for _, frag := range wantFragments {
		found := false
		for _, entry := range got {
			if strings.Contains(entry, frag) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s %v missing entry containing %q", kind, got, frag)
		}
	}
}
