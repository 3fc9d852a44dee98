package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/samdwyer/dungeo/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "class not found",
			expected: "NOT_FOUND: class not found",
		},
		{
			name:     "resource exhausted error",
			code:     errors.CodeResourceExhausted,
			message:  "no boss cell",
			expected: "RESOURCE_EXHAUSTED: no boss cell",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.ResourceExhaustedf("gave up after %d attempts", 100).
		WithMeta("attempts", 100).
		WithMeta("size", 9)

	s.Equal(100, err.Meta["attempts"])
	s.Equal(9, err.Meta["size"])
	s.Equal("gave up after 100 attempts", err.Message)
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("embedded file missing")
	wrapped := errors.Wrap(baseErr, "failed to load catalog")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load catalog", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("tier 4 not found").WithMeta("tier", 4)
	wrapped := errors.Wrapf(baseErr, "spawn for level %d", 12)

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("spawn for level 12", wrapped.Message)
	s.Equal(4, wrapped.Meta["tier"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
}

func (s *ErrorsTestSuite) TestIsMatchesCode() {
	err := fmt.Errorf("outer: %w", errors.ResourceExhaustedf("treasure floor"))
	s.ErrorIs(err, errors.New(errors.CodeResourceExhausted, "any"))
	s.NotErrorIs(err, errors.New(errors.CodeNotFound, "any"))
	s.True(errors.IsResourceExhausted(err))
}

func (s *ErrorsTestSuite) TestGetCodeAndMessage() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(errors.FailedPreconditionf("no class")))

	s.Equal("", errors.GetMessage(nil))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Equal("no class", errors.GetMessage(errors.Wrap(errors.InvalidArgumentf("bad"), "no class")))
}
