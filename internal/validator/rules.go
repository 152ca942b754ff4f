package validator

import (
	"log"

	"talentboard/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules registers the model-derived validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-skill-level': the skill level enum from the Skill model
	mustRegister("is-skill-level", validateSkillLevel)
}

func validateSkillLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is handled by 'required'
	}

	switch models.SkillLevel(value) {
	case models.SkillLevelBeginner, models.SkillLevelIntermediate, models.SkillLevelAdvanced, models.SkillLevelExpert:
		return true
	default:
		return false
	}
}
