package validator

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite

	validate *validator.Validate
}

func (s *ValidatorTestSuite) SetupSuite() {
	s.validate = validator.New()
	s.Require().NoError(RegisterCustomValidations(s.validate))
}

func (s *ValidatorTestSuite) TestFutureTime() {
	type payload struct {
		EndTime time.Time `validate:"futuretime"`
	}

	tests := []struct {
		desc     string
		endTime  time.Time
		expValid bool
	}{
		{
			desc:     "past time",
			endTime:  time.Now().Add(-time.Hour),
			expValid: false,
		},
		{
			desc:     "zero time",
			endTime:  time.Time{},
			expValid: false,
		},
		{
			desc:     "future time",
			endTime:  time.Now().Add(time.Hour),
			expValid: true,
		},
	}
	for _, t := range tests {
		err := s.validate.Struct(payload{EndTime: t.endTime})
		if t.expValid {
			s.NoError(err, t.desc)
		} else {
			s.Error(err, t.desc)
		}
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
