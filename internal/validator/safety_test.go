package validator

import (
	"reflect"
	"testing"
)

func TestCheckSafety(t *testing.T) {
	patterns := DefaultDangerPatterns()

	tests := []struct {
		name        string
		code        string
		wantSafe    bool
		wantReasons []string
	}{
		{
			name:     "harmless test class",
			code:     "import org.junit.jupiter.api.Test;\npublic class FooTest {\n  @Test void t() {}\n}",
			wantSafe: true,
		},
		{
			name:     "runtime acquisition and exec",
			code:     `Runtime.getRuntime().exec("rm -rf /");`,
			wantSafe: false,
			wantReasons: []string{
				"Runtime must not be used to execute system commands",
				"calls to exec() are not allowed",
			},
		},
		{
			name:        "process builder construction",
			code:        `Process p = new ProcessBuilder("ls").start();`,
			wantSafe:    false,
			wantReasons: []string{"spawning processes is not allowed"},
		},
		{
			name:        "forced vm exit",
			code:        "System.exit(1);",
			wantSafe:    false,
			wantReasons: []string{"System.exit() is not allowed"},
		},
		{
			name: "all four markers reported in pattern order",
			code: `Runtime.getRuntime();
p.exec("x");
new ProcessBuilder("y");
System.exit(0);`,
			wantSafe: false,
			wantReasons: []string{
				"Runtime must not be used to execute system commands",
				"calls to exec() are not allowed",
				"spawning processes is not allowed",
				"System.exit() is not allowed",
			},
		},
		{
			name:     "executor is not exec",
			code:     "executor.execute(task);",
			wantSafe: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			safe, reasons := CheckSafety(tt.code, patterns)
			if safe != tt.wantSafe {
				t.Errorf("CheckSafety() safe = %v, want %v (reasons: %v)", safe, tt.wantSafe, reasons)
			}
			if !tt.wantSafe && !reflect.DeepEqual(reasons, tt.wantReasons) {
				t.Errorf("CheckSafety() reasons = %v, want %v", reasons, tt.wantReasons)
			}
			if tt.wantSafe && len(reasons) != 0 {
				t.Errorf("CheckSafety() reported reasons for safe code: %v", reasons)
			}
		})
	}
}
