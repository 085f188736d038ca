package edmcheck_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/edmcheck"
	"github.com/aretw0/edmcheck/internal/testutils"
	"github.com/aretw0/edmcheck/pkg/adapters/memory"
	"github.com/aretw0/edmcheck/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_Check(t *testing.T) {
	schemaPath := testutils.WriteSchema(t, `{"required":["id"]}`)

	t.Run("invalid document", func(t *testing.T) {
		report, err := edmcheck.New(schemaPath, domain.DefaultPattern, edmcheck.WithSource(memory.NewSource(map[string]string{
			"examples/a.ddna.json": `{}`,
		}))).Check(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.StatusFailed, report.Status)
		assert.Equal(t, "edm.v0.4", report.Label)
		require.Len(t, report.Results, 1)
		assert.NotEmpty(t, report.Results[0].Violations)
	})

	t.Run("malformed document", func(t *testing.T) {
		src := edmcheck.WithSource(memory.NewSource(map[string]string{"examples/a.ddna.json": `{`}))

		report, err := edmcheck.New(schemaPath, domain.DefaultPattern, src).Check(context.Background())
		assert.True(t, errors.Is(err, domain.ErrDocumentParse))
		assert.Equal(t, domain.ExitCrash, report.ExitCode())

		report, err = edmcheck.New(schemaPath, domain.DefaultPattern, src, edmcheck.WithCountMalformed(true)).Check(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.ExitInvalid, report.ExitCode())
	})
}
