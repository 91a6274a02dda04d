package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsInnerCode(t *testing.T) {
	inner := DatasetInvalid("missing column exam_score")
	err := Wrap(inner, "load dataset")

	assert.Equal(t, CodeDatasetInvalid, GetCode(err))
	assert.Equal(t, "load dataset: missing column exam_score", err.Error())
	assert.True(t, stderrors.Is(err, inner))
}

func TestWrapForeignError(t *testing.T) {
	err := Wrapf(fmt.Errorf("disk gone"), "read %s", "data.csv")

	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.Equal(t, "read data.csv: disk gone", err.Error())
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestGetCodeThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", InvalidInput("bad"))
	assert.True(t, IsAppError(err))
	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.False(t, IsAppError(stderrors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidInput("x")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("route")))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(DatasetInvalidf("row %d", 3)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(stderrors.New("boom")))
}
