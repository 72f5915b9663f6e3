package manifest

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	log "github.com/mallardduck/version-drift-tool/internal/logging"
)

// ReadVersionFile reads a plain-text file holding a single version string.
// The value is trimmed of surrounding whitespace and line terminators.
// A missing file or a file with no content yields (_, false).
func ReadVersionFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Log.Debugf("Version file not readable at '%s': %v", path, err)
		return "", false
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		log.Log.Debugf("Version file at '%s' is empty", path)
		return "", false
	}

	return value, true
}

// ReadVersionField looks up a top-level key in a structured manifest and
// returns its scalar value, trimmed. YAML and JSON manifests both go through
// the same decoder since JSON documents are valid YAML. A missing file,
// malformed content, an absent or null key, or a non-scalar value all yield
// (_, false) rather than an error.
func ReadVersionField(path string, key string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Log.Debugf("Manifest not readable at '%s': %v", path, err)
		return "", false
	}

	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Log.Debugf("Manifest at '%s' is malformed: %v", path, err)
		return "", false
	}

	node, found := doc[key]
	if !found || node.Tag == "!!null" {
		log.Log.Debugf("Manifest at '%s' has no '%s' field", path, key)
		return "", false
	}
	if node.Kind != yaml.ScalarNode {
		log.Log.Debugf("Manifest at '%s' has non-scalar '%s' field", path, key)
		return "", false
	}

	// The node's raw text keeps unquoted scalars like `appVersion: 1.10`
	// intact; decoding them as numbers would drop the trailing zero
	value := strings.TrimSpace(node.Value)
	if value == "" {
		return "", false
	}

	return value, true
}
