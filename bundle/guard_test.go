package bundle_test

import (
	"testing"

	"github.com/sprintertech/sprinter-settlement/bundle"
	mock_bundle "github.com/sprintertech/sprinter-settlement/bundle/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuardTestSuite struct {
	suite.Suite

	guard     *bundle.Guard
	mockStore *mock_bundle.MockStatusStore
}

func TestRunGuardTestSuite(t *testing.T) {
	suite.Run(t, new(GuardTestSuite))
}

func (s *GuardTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockStore = mock_bundle.NewMockStatusStore(ctrl)
	s.guard = bundle.NewGuard(s.mockStore)
}

func (s *GuardTestSuite) Test_Apply_IncompleteDataKeepsTerminalStatus() {
	s.mockStore.EXPECT().Get("1").Return(bundle.StatusCompleted, true)

	status, err := s.guard.Apply("1", bundle.StatusUnknown, false)

	s.ErrorIs(err, bundle.ErrRegressionRefused)
	s.Equal(bundle.StatusCompleted, status)
}

func (s *GuardTestSuite) Test_Apply_IncompleteDataWithoutCachedStatus() {
	s.mockStore.EXPECT().Get("1").Return(bundle.Status(""), false)

	status, err := s.guard.Apply("1", bundle.StatusUnknown, false)

	s.Nil(err)
	s.Equal(bundle.StatusUnknown, status)
}

func (s *GuardTestSuite) Test_Apply_IncompleteDataMatchingCachedStatus() {
	s.mockStore.EXPECT().Get("1").Return(bundle.StatusFailed, true)

	status, err := s.guard.Apply("1", bundle.StatusFailed, false)

	s.Nil(err)
	s.Equal(bundle.StatusFailed, status)
}

func (s *GuardTestSuite) Test_Apply_CompleteTerminalStatusIsStored() {
	s.mockStore.EXPECT().Set("1", bundle.StatusExpired)

	status, err := s.guard.Apply("1", bundle.StatusExpired, true)

	s.Nil(err)
	s.Equal(bundle.StatusExpired, status)
}

func (s *GuardTestSuite) Test_Apply_CompleteNonTerminalStatusClearsCache() {
	s.mockStore.EXPECT().Delete("1")

	status, err := s.guard.Apply("1", bundle.StatusPreconfirmed, true)

	s.Nil(err)
	s.Equal(bundle.StatusPreconfirmed, status)
}
