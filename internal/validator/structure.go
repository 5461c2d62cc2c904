package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	publicClassRE = regexp.MustCompile(`public\s+class\s+(\w+)`)
	testMethodRE  = regexp.MustCompile(`@Test\b`)
)

// junitImports are the JUnit 5 markers accepted as proof that the file can
// reference @Test at all. Either form satisfies the check.
var junitImports = []string{
	"import org.junit.jupiter.api.Test;",
	"import static org.junit.jupiter.api.Assertions.*;",
}

// mockitoMarkers are call shapes that imply Mockito usage. Detection is
// purely textual; no scoping or shadowing is considered.
var mockitoMarkers = []string{"mock(", "when(", "verify("}

// checkStructure verifies the candidate resembles a usable JUnit 5 test
// file. Every check runs regardless of earlier failures within this stage;
// results accumulate into the three severity buckets.
func checkStructure(code, targetClass string) (errs, warns, sugs []string) {
	hasJUnitImport := false
	for _, imp := range junitImports {
		if strings.Contains(code, imp) {
			hasJUnitImport = true
			break
		}
	}
	if !hasJUnitImport {
		errs = append(errs, "missing JUnit 5 import (expected @Test support)")
	}

	if m := publicClassRE.FindStringSubmatch(code); m == nil {
		errs = append(errs, "no public class declaration found")
	} else {
		className := m[1]
		if !strings.HasSuffix(className, "Test") {
			warns = append(warns, fmt.Sprintf("test class name %q should end with \"Test\"", className))
		}
		if targetClass != "" && !strings.HasPrefix(className, targetClass) {
			sugs = append(sugs, fmt.Sprintf("consider naming the test class %q to match the class under test", targetClass+"Test"))
		}
	}

	if len(testMethodRE.FindAllString(code, -1)) == 0 {
		errs = append(errs, "no @Test annotated methods found")
	}

	if strings.Contains(code, "public static void main") {
		warns = append(warns, "test classes should not declare a main method")
	}

	usesMockito := false
	for _, marker := range mockitoMarkers {
		if strings.Contains(code, marker) {
			usesMockito = true
			break
		}
	}
	if usesMockito && !strings.Contains(code, "import org.mockito") {
		warns = append(warns, "Mockito calls detected but no org.mockito import found")
	}

	return errs, warns, sugs
}
