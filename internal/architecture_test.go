package internal_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const projectImportPath = "github.com/rafaelleal24/products-api"

// infrastructure drivers that must stay behind the adapters
var driverImports = []string{
	"gorm.io/",
	"github.com/glebarez/sqlite",
	"go.mongodb.org/mongo-driver",
	"github.com/redis/go-redis",
	"github.com/rabbitmq/amqp091-go",
	"github.com/gin-gonic/gin",
}

func TestArchitecturalRules(t *testing.T) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		t.Fatal("Failed to find project root:", err)
	}

	err = filepath.Walk(projectRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// the go tool ignores directories starting with _ or .
		if info.IsDir() && path != projectRoot {
			if name := info.Name(); strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
		}

		if !strings.HasSuffix(path, ".go") ||
			strings.HasSuffix(path, "_test.go") {
			return nil
		}

		fset := token.NewFileSet()
		node, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Logf("Failed to parse %s: %v", path, err)
			return nil
		}

		relPath, err := filepath.Rel(projectRoot, path)
		if err != nil {
			t.Logf("Failed to get relative path for %s: %v", path, err)
			return nil
		}
		relPath = "/" + strings.ReplaceAll(relPath, "\\", "/")

		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, "\"")

			if isViolation(relPath, importPath) {
				position := fset.Position(imp.Pos())
				t.Errorf("ARCHITECTURE VIOLATION at %v: %s imports %s", position, relPath, importPath)
			}
		}

		return nil
	})

	if err != nil {
		t.Fatal("Failed to walk through project files:", err)
	}
}

func TestIsViolation(t *testing.T) {
	tests := []struct {
		file       string
		importPath string
		want       bool
	}{
		{"/internal/core/domain/product.go", "github.com/shopspring/decimal", false},
		{"/internal/core/domain/product.go", projectImportPath + "/internal/core/port", true},
		{"/internal/core/port/product.go", projectImportPath + "/internal/core/domain", false},
		{"/internal/core/port/product.go", projectImportPath + "/internal/core/service", true},
		{"/internal/core/service/product.go", projectImportPath + "/internal/core/port", false},
		{"/internal/core/service/product.go", projectImportPath + "/internal/adapters/sqlite", true},
		{"/internal/core/service/product.go", "gorm.io/gorm", true},
		{"/internal/adapters/http/router.go", projectImportPath + "/internal/adapters/config", false},
		{"/internal/adapters/http/router.go", projectImportPath + "/internal/adapters/http/handlers", false},
		{"/internal/adapters/http/router.go", projectImportPath + "/internal/adapters/sqlite", true},
		{"/internal/adapters/sqlite/sqlite.go", "gorm.io/gorm", false},
		{"/cmd/http/app.go", projectImportPath + "/internal/adapters/sqlite", false},
	}

	for _, tt := range tests {
		t.Run(tt.file+" -> "+tt.importPath, func(t *testing.T) {
			if got := isViolation(tt.file, tt.importPath); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func isViolation(filePath, importPath string) bool {
	// core never touches infrastructure drivers
	if strings.Contains(filePath, "/core/") {
		for _, driver := range driverImports {
			if strings.HasPrefix(importPath, driver) {
				return true
			}
		}
	}

	if !strings.HasPrefix(importPath, projectImportPath) {
		return false
	}

	internalImportPath := strings.TrimPrefix(importPath, projectImportPath)
	if !strings.HasPrefix(internalImportPath, "/") {
		internalImportPath = "/" + internalImportPath
	}

	// core/domain can only import third parties libs or golang libs
	if strings.Contains(filePath, "/core/domain") {
		return !strings.Contains(internalImportPath, "/core/domain")
	}

	// core/port can only import domain
	if strings.Contains(filePath, "/core/port") {
		return !strings.Contains(internalImportPath, "/core/domain") && !strings.Contains(internalImportPath, "/core/port")
	}

	//  core/* can only import from inside core
	if strings.Contains(filePath, "/core") {
		return !strings.Contains(internalImportPath, "/core")
	}

	//  inbound adapters cannot import other adapters packages outside of adapters/config
	prefixArr := []string{"/adapters/http"}
	for _, prefix := range prefixArr {
		if strings.Contains(filePath, prefix) {
			if strings.Contains(internalImportPath, "/adapters") {
				return !strings.Contains(internalImportPath, "/adapters/config") &&
					!strings.Contains(internalImportPath, prefix)
			}
		}
	}

	return false
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return os.Getwd()
}
