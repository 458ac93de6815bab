package rpm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rencanalab/rpm-backend/internal/domain"
	"github.com/rencanalab/rpm-backend/internal/platform/gemini"
	"github.com/rencanalab/rpm-backend/internal/platform/logger"
	"github.com/rencanalab/rpm-backend/internal/rpm/prompts"
)

// Generator turns a validated RPMInput into a schema-conforming
// RPMGeneratedOutput through one generative-service round trip. It performs
// no input-completeness validation; callers are responsible for that. One
// outbound call per invocation: no caching, no idempotency key, and repeated
// submissions may yield different text.
type Generator struct {
	llm gemini.Client
	log *logger.Logger
}

func NewGenerator(llm gemini.Client, log *logger.Logger) *Generator {
	return &Generator{
		llm: llm,
		log: log.With("service", "RPMGenerator"),
	}
}

func (g *Generator) Generate(ctx context.Context, input domain.RPMInput) (domain.RPMGeneratedOutput, error) {
	var out domain.RPMGeneratedOutput

	system := prompts.BuildSystem()
	user := prompts.BuildUser(input)
	schema := prompts.RPMOutputSchema()

	raw, err := g.llm.GenerateJSON(ctx, system, user, schema)
	if err != nil {
		g.log.Error("RPM generation request failed",
			"mapel", input.Mapel,
			"jumlah_pertemuan", input.JumlahPertemuan,
			"error", err.Error(),
		)
		return out, fmt.Errorf("generate rpm: %w", err)
	}

	if err := decodeOutput(raw, &out); err != nil {
		g.log.Error("RPM payload decode failed", "error", err.Error())
		return out, fmt.Errorf("generate rpm: %w", err)
	}

	if err := ValidateOutput(out); err != nil {
		g.log.Error("RPM payload failed contract validation", "error", err.Error())
		return out, fmt.Errorf("generate rpm: %w", err)
	}

	if mismatched := SessionMismatches(input, out); len(mismatched) > 0 {
		g.log.Warn("Generated sessions do not match declared sessions",
			"declared", input.JumlahPertemuan,
			"unmatched_meeting_numbers", mismatched,
		)
	}

	return out, nil
}

func decodeOutput(raw map[string]any, out *domain.RPMGeneratedOutput) error {
	buf, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("re-encode payload: %w", err)
	}
	if err := json.Unmarshal(buf, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
