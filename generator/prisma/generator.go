package prisma

import (
	"bytes"
	"fmt"
	"io"

	"github.com/satishbabariya/dragonfly/generator/printer"
)

// GeneratorProvider locates the client generator, either the
// canonical prisma-client-js name or a path to an executable.
type GeneratorProvider string

// GeneratorProviderPrismaClientJS is the standard JavaScript client.
const GeneratorProviderPrismaClientJS GeneratorProvider = "prisma-client-js"

// EngineType selects how the client talks to the query engine. An
// empty value omits the engineType key.
type EngineType string

const (
	// EngineTypeLibrary loads the engine as a node addon.
	EngineTypeLibrary EngineType = "library"
	// EngineTypeBinary runs the engine as a sidecar process.
	EngineTypeBinary EngineType = "binary"
)

// BinaryTarget is a platform the query engine ships for.
type BinaryTarget string

const (
	BinaryTargetAlpineOpenSSL1_1 BinaryTarget = "linux-musl"
	BinaryTargetAlpineOpenSSL3_0 BinaryTarget = "linux-musl-openssl-3.0.x"
	BinaryTargetArm64OpenSSL1_0  BinaryTarget = "linux-arm64-openssl-1.0.x"
	BinaryTargetArm64OpenSSL1_1  BinaryTarget = "linux-arm64-openssl-1.1.x"
	BinaryTargetArm64OpenSSL3_0  BinaryTarget = "linux-arm64-openssl-3.0.x"
	BinaryTargetDarwin           BinaryTarget = "darwin"
	BinaryTargetDarwinArm64      BinaryTarget = "darwin-arm64"
	BinaryTargetDebianOpenSSL1_0 BinaryTarget = "debian-openssl-1.0.x"
	BinaryTargetDebianOpenSSL1_1 BinaryTarget = "debian-openssl-1.1.x"
	BinaryTargetDebianOpenSSL3_0 BinaryTarget = "debian-openssl-3.0.x"
	BinaryTargetNative           BinaryTarget = "native"
	BinaryTargetRhelOpenSSL1_0   BinaryTarget = "rhel-openssl-1.0.x"
	BinaryTargetRhelOpenSSL1_1   BinaryTarget = "rhel-openssl-1.1.x"
	BinaryTargetRhelOpenSSL3_0   BinaryTarget = "rhel-openssl-3.0.x"
	BinaryTargetWindows          BinaryTarget = "windows"
)

// PreviewFeature is an opt-in client capability.
type PreviewFeature string

const (
	PreviewFeatureClientExtensions      PreviewFeature = "clientExtensions"
	PreviewFeatureDeno                  PreviewFeature = "deno"
	PreviewFeatureExtendedWhereUnique   PreviewFeature = "extendedWhereUnique"
	PreviewFeatureFieldReference        PreviewFeature = "fieldReference"
	PreviewFeatureFilteredRelationCount PreviewFeature = "filteredRelationCount"
	PreviewFeatureFullTextIndex         PreviewFeature = "fullTextIndex"
	PreviewFeatureFullTextSearch        PreviewFeature = "fullTextSearch"
	PreviewFeatureMetrics               PreviewFeature = "metrics"
	PreviewFeatureMultiSchema           PreviewFeature = "multiSchema"
	PreviewFeatureOrderByNulls          PreviewFeature = "orderByNulls"
	PreviewFeaturePostgresqlExtensions  PreviewFeature = "postgresqlExtensions"
	PreviewFeatureTracing               PreviewFeature = "tracing"
	PreviewFeatureViews                 PreviewFeature = "views"
)

func (b BinaryTarget) PrintInline(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\"%s\"", string(b))

	return err
}

func (p PreviewFeature) PrintInline(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\"%s\"", string(p))

	return err
}

// Generator is a `generator` block.
type Generator struct {
	Name            string
	Provider        GeneratorProvider
	Output          string
	BinaryTargets   []BinaryTarget
	PreviewFeatures []PreviewFeature
	EngineType      EngineType
}

// Print renders the generator block with the `=` signs of all keys in
// one column. Optional keys are left out when unset, the two list
// keys are left out when empty.
func (g Generator) Print(level int, w io.Writer) error {
	indentOuter := printer.Indent(tabSize, level)
	indentInner := printer.Indent(tabSize, level+1)

	keys := []string{"provider"}
	values := []string{quote(string(g.Provider))}

	if g.Output != "" {
		keys = append(keys, "output")
		values = append(values, quote(g.Output))
	}

	if len(g.BinaryTargets) > 0 {
		var cell bytes.Buffer

		if _, err := cell.WriteString("["); err != nil {
			return err
		}

		if err := printer.Intercalate(g.BinaryTargets, &cell, ", "); err != nil {
			return err
		}

		if _, err := cell.WriteString("]"); err != nil {
			return err
		}

		keys = append(keys, "binaryTargets")
		values = append(values, cell.String())
	}

	if len(g.PreviewFeatures) > 0 {
		var cell bytes.Buffer

		if _, err := cell.WriteString("["); err != nil {
			return err
		}

		if err := printer.Intercalate(g.PreviewFeatures, &cell, ", "); err != nil {
			return err
		}

		if _, err := cell.WriteString("]"); err != nil {
			return err
		}

		keys = append(keys, "previewFeatures")
		values = append(values, cell.String())
	}

	if g.EngineType != "" {
		keys = append(keys, "engineType")
		values = append(values, quote(string(g.EngineType)))
	}

	maxKeyLength := 0

	for _, key := range keys {
		if len(key) > maxKeyLength {
			maxKeyLength = len(key)
		}
	}

	if _, err := fmt.Fprintf(w, "%sgenerator %s {\n", indentOuter, g.Name); err != nil {
		return err
	}

	for i, key := range keys {
		if _, err := fmt.Fprintf(
			w,
			"%s%-*s = %s\n",
			indentInner,
			maxKeyLength,
			key,
			values[i],
		); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s}\n", indentOuter)

	return err
}
