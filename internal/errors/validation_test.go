package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("title", "is required")
	ve.AddFieldErrorf("characters", "must be %s", "an array")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal("validation failed: characters: must be an array; title: is required", ve.Error())

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be between %d and %d", 1, 20).
		RequiredField("class")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
	s.Assert().Nil(vb.ImportErrors())
}

func (s *ValidationTestSuite) TestImportErrorsAreSorted() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("title").
		RequiredField("gameSystem").
		Field("characters", "must be an array")

	importErrs := vb.ImportErrors()
	s.Require().Len(importErrs, 3)
	s.Assert().Equal([]string{"characters", "gameSystem", "title"}, importErrs.Fields())
	s.Assert().Equal("characters must be an array", importErrs[0].Message)
	s.Assert().Equal("title is required", importErrs[2].Message)
	for _, ie := range importErrs {
		s.Assert().Equal(errors.KindValidation, ie.Kind)
	}
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"debug", "info", "warn", "error"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("log_level", "verbose", allowed, vb)
	errors.ValidateEnum("other_level", "info", allowed, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	var e *errors.Error
	s.Require().ErrorAs(err, &e)
	validationErrors := e.Meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["log_level"][0], "must be one of: debug, info, warn, error")
	s.Assert().NotContains(validationErrors, "other_level")
}
