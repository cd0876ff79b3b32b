package setup_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/placeskit/places-setup/internal/app/places-setup/clients/browser"
	"github.com/placeskit/places-setup/internal/app/places-setup/clients/gcloud"
	"github.com/placeskit/places-setup/internal/app/places-setup/clients/keystore"
	"github.com/placeskit/places-setup/internal/app/places-setup/commands/setup"
	"github.com/placeskit/places-setup/internal/app/places-setup/models"
	"github.com/placeskit/places-setup/internal/app/places-setup/services/config"
	"github.com/placeskit/places-setup/internal/app/places-setup/services/input"
	"github.com/placeskit/places-setup/internal/pkg/printer"
	"github.com/placeskit/places-setup/internal/pkg/tea/component/program"
)

const (
	projectID = "places-demo-1"

	versionCmd   = "gcloud --version"
	authCmd      = "gcloud auth login"
	createCmd    = "gcloud projects create places-demo-1 --name='Demo Project'"
	describeCmd  = "gcloud projects describe places-demo-1"
	setCmd       = "gcloud config set project places-demo-1"
	enableCmd    = "gcloud services enable places-backend.googleapis.com places.googleapis.com --project=places-demo-1"
	keyCreateCmd = "gcloud alpha services api-keys create --display-name=places-api-key --project=places-demo-1"
	keyListCmd   = "gcloud alpha services api-keys list --project=places-demo-1 --format=json"
	keyGetCmd    = "gcloud alpha services api-keys get-key-string key-uid-1 --project=places-demo-1 --format=json"
	keyUpdateCmd = "gcloud alpha services api-keys update key-uid-1 " +
		"--api-target=service=places-backend.googleapis.com --api-target=service=places.googleapis.com " +
		"--project=places-demo-1"

	termsURL   = "https://console.cloud.google.com/terms/cloud"
	billingURL = "https://console.cloud.google.com/billing/linkedaccount?project=places-demo-1"

	keyList = `[
		{"name": "projects/1/locations/global/keys/other", "displayName": "other-key"},
		{"name": "projects/1/locations/global/keys/key-uid-1", "uid": "key-uid-1", "displayName": "places-api-key"}
	]`
)

var (
	ok          = models.CommandResult{Success: true}
	termsFailed = models.CommandResult{Output: "ERROR: Callers must accept Terms of Service"}
)

type SetupTestSuite struct {
	suite.Suite

	handler  *setup.Handler
	gcloud   *gcloud.MockClient
	browser  *browser.MockClient
	input    *input.MockService
	keystore *keystore.MockClient
	config   *config.Config

	output *bytes.Buffer
}

func TestSetupSuite(t *testing.T) {
	suite.Run(t, new(SetupTestSuite))
}

func (s *SetupTestSuite) SetupTest() {
	s.gcloud = &gcloud.MockClient{}
	s.browser = &browser.MockClient{}
	s.input = &input.MockService{}
	s.keystore = &keystore.MockClient{}

	cfg := config.Default()
	cfg.TermsRetryDelaySeconds = 0
	cfg.KeySettleDelaySeconds = 0
	cfg.RecommendationsDir = s.T().TempDir()
	s.config = &cfg

	mockConfig := &config.MockService{}
	mockConfig.On("GetConfig").Return(s.config)
	mockConfig.On("Source").Return("test").Maybe()

	s.browser.On("OpenURL", mock.Anything).Return(nil).Maybe()

	s.handler = setup.NewHandler(s.gcloud, s.browser, s.input, s.keystore, mockConfig)
	s.handler.GOOS = "linux"

	s.output = &bytes.Buffer{}
	printer.SetOutput(s.output)
}

func (s *SetupTestSuite) TearDownTest() {
	printer.SetOutput(nil)
}

func (s *SetupTestSuite) expect(command string, result models.CommandResult) *mock.Call {
	return s.gcloud.On("Run", mock.Anything, mock.Anything, command).Return(result)
}

func (s *SetupTestSuite) assertNotRun(substr string) {
	for _, call := range s.gcloud.Calls {
		command, _ := call.Arguments.Get(2).(string)
		s.NotContains(command, substr)
	}
}

func (s *SetupTestSuite) runCount(command string) int {
	count := 0
	for _, call := range s.gcloud.Calls {
		if call.Arguments.Get(2) == command {
			count++
		}
	}
	return count
}

// expectProject stubs the stages up to and including setting the active project.
func (s *SetupTestSuite) expectProject() {
	s.expect(versionCmd, ok)
	s.expect(createCmd, ok)
	s.expect(setCmd, ok)
}

func (s *SetupTestSuite) expectRealKey() {
	s.expect(keyCreateCmd, ok)
	s.expect(keyListCmd, models.CommandResult{Success: true, Output: keyList})
	s.expect(keyGetCmd, models.CommandResult{Success: true, Output: `{"keyString": "AIzaRealKey123"}`})
}

func (s *SetupTestSuite) opts() *models.SetupOptions {
	return &models.SetupOptions{
		ProjectID:   projectID,
		ProjectName: "Demo Project",
		SkipAuth:    true,
		AutoConfirm: true,
	}
}

func (s *SetupTestSuite) TestRun_MockBillingAutoConfirm() {
	s.expectProject()
	opts := s.opts()
	opts.MockBilling = true

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.True(result.IsMock)
	s.Equal(projectID, result.ProjectID)
	s.True(strings.HasPrefix(result.APIKey, setup.MockKeyMarker))
	s.assertNotRun("api-keys")
	s.assertNotRun("services enable")
	s.gcloud.AssertExpectations(s.T())
}

func (s *SetupTestSuite) TestRun_NoBillingNeverEnablesService() {
	s.expectProject()
	s.expect(authCmd, ok)
	opts := s.opts()
	opts.SkipAuth = false
	opts.AutoConfirm = false
	opts.NoBilling = true

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.True(result.IsMock)
	s.assertNotRun("services enable")
	s.assertNotRun("api-keys")
	s.browser.AssertNotCalled(s.T(), "OpenURL", billingURL)
}

func (s *SetupTestSuite) TestRun_GCloudNotInstalled() {
	s.expect(versionCmd, models.CommandResult{Output: "gcloud: not found"})
	s.handler.GOOS = "plan9"

	result := s.handler.Run(context.Background(), s.opts())

	s.False(result.Success)
	s.Equal("Google Cloud SDK (gcloud) is not installed.", result.Error)
	s.gcloud.AssertNumberOfCalls(s.T(), "Run", 1)
}

func (s *SetupTestSuite) TestRun_MalformedKeyList() {
	s.expectProject()
	s.expect(enableCmd, ok)
	s.expect(keyCreateCmd, ok)
	s.expect(keyListCmd, models.CommandResult{Success: true, Output: "Listed 0 items."})

	result := s.handler.Run(context.Background(), s.opts())

	s.False(result.Success)
	s.Equal("Failed to create API key", result.Error)
	s.assertNotRun("get-key-string")
}

func (s *SetupTestSuite) TestRun_MissingKeyString() {
	s.expectProject()
	s.expect(enableCmd, ok)
	s.expect(keyCreateCmd, ok)
	s.expect(keyListCmd, models.CommandResult{Success: true, Output: keyList})
	s.expect(keyGetCmd, models.CommandResult{Success: true, Output: `{"name": "key-uid-1"}`})

	result := s.handler.Run(context.Background(), s.opts())

	s.Equal("Failed to create API key", result.Error)
}

func (s *SetupTestSuite) TestRun_RealKey() {
	s.expectProject()
	s.expect(enableCmd, ok)
	s.expectRealKey()
	s.expect(keyUpdateCmd, ok)
	s.keystore.On("CopyToClipboard", "AIzaRealKey123").Return(nil)
	s.keystore.On("Save", projectID, "AIzaRealKey123").Return(nil)
	opts := s.opts()
	opts.CopyKey = true
	opts.SaveKey = true

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.False(result.IsMock)
	s.Equal("AIzaRealKey123", result.APIKey)
	s.browser.AssertCalled(s.T(), "OpenURL", billingURL)
	s.gcloud.AssertExpectations(s.T())
	s.keystore.AssertExpectations(s.T())
	s.Contains(s.output.String(), "https://console.cloud.google.com/apis/credentials?project=places-demo-1")
}

func (s *SetupTestSuite) TestRun_RestrictFailureIsNotFatal() {
	s.expectProject()
	s.expect(enableCmd, ok)
	s.expectRealKey()
	s.expect(keyUpdateCmd, models.CommandResult{Output: "PERMISSION_DENIED"})

	result := s.handler.Run(context.Background(), s.opts())

	s.True(result.Success)
	s.Equal("AIzaRealKey123", result.APIKey)
	s.Contains(s.output.String(), "Could not restrict the API key")
}

func (s *SetupTestSuite) TestRun_KeystoreFailuresAreWarnings() {
	s.expectProject()
	s.expect(enableCmd, ok)
	s.expectRealKey()
	s.expect(keyUpdateCmd, ok)
	s.keystore.On("CopyToClipboard", mock.Anything).Return(keystore.ErrClipboardUnavailable)
	opts := s.opts()
	opts.CopyKey = true

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.Contains(s.output.String(), "Could not copy the API key")
}

func (s *SetupTestSuite) TestRun_MockKeyIsNeverStored() {
	s.expectProject()
	opts := s.opts()
	opts.MockBilling = true
	opts.CopyKey = true
	opts.SaveKey = true

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.keystore.AssertNotCalled(s.T(), "CopyToClipboard", mock.Anything)
	s.keystore.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything)
}

func (s *SetupTestSuite) TestRun_AuthFailure() {
	s.expect(versionCmd, ok)
	s.expect(authCmd, models.CommandResult{Output: "login aborted"})
	opts := s.opts()
	opts.SkipAuth = false

	result := s.handler.Run(context.Background(), opts)

	s.Equal("Failed to authenticate with Google Cloud", result.Error)
	s.assertNotRun("projects create")
	s.gcloud.AssertNumberOfCalls(s.T(), "Run", 2)
}

func (s *SetupTestSuite) TestRun_TermsAutoConfirmDoesNotRetry() {
	s.expect(versionCmd, ok)
	s.expect(createCmd, termsFailed)

	result := s.handler.Run(context.Background(), s.opts())

	s.False(result.Success)
	s.Equal("Failed to create project", result.Error)
	s.Equal(1, s.runCount(createCmd))
	s.browser.AssertCalled(s.T(), "OpenURL", termsURL)
	s.input.AssertNotCalled(s.T(), "Confirm", mock.Anything, mock.Anything, mock.Anything)
	s.NotContains(s.output.String(), "Open this URL in your browser")
}

func (s *SetupTestSuite) TestRun_BrowserFailurePrintsURL() {
	s.browser.ExpectedCalls = nil
	s.browser.On("OpenURL", termsURL).Return(browser.ErrNoLauncher)
	s.expect(versionCmd, ok)
	s.expect(createCmd, termsFailed)

	result := s.handler.Run(context.Background(), s.opts())

	s.Equal("Failed to create project", result.Error)
	s.Contains(s.output.String(), "Open this URL in your browser: "+termsURL)
	s.browser.AssertExpectations(s.T())
}

func (s *SetupTestSuite) TestRun_TermsInteractiveRetriesAreBounded() {
	s.expect(versionCmd, ok)
	s.expect(createCmd, termsFailed)
	s.input.On("Confirm", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	opts := s.opts()
	opts.AutoConfirm = false

	result := s.handler.Run(context.Background(), opts)

	s.False(result.Success)
	s.Equal("Failed to create project: Terms of Service still not accepted", result.Error)
	s.Equal(s.config.TermsMaxRetries+1, s.runCount(createCmd))
	s.input.AssertNumberOfCalls(s.T(), "Confirm", s.config.TermsMaxRetries)
}

func (s *SetupTestSuite) TestRun_TermsAcceptedThenCreated() {
	s.expect(versionCmd, ok)
	s.expect(createCmd, termsFailed).Once()
	s.expect(createCmd, ok).Once()
	s.expect(setCmd, ok)
	s.input.On("Confirm", mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
	opts := s.opts()
	opts.AutoConfirm = false
	opts.MockBilling = true

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.Equal(2, s.runCount(createCmd))
}

func (s *SetupTestSuite) TestRun_TermsDeclined() {
	s.expect(versionCmd, ok)
	s.expect(createCmd, termsFailed)
	s.input.On("Confirm", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	opts := s.opts()
	opts.AutoConfirm = false

	result := s.handler.Run(context.Background(), opts)

	s.Equal("Failed to create project", result.Error)
	s.Equal(1, s.runCount(createCmd))
}

func (s *SetupTestSuite) TestRun_ExistingProjectIsReused() {
	s.expect(versionCmd, ok)
	s.expect(createCmd, models.CommandResult{Output: "ERROR: The project ID you specified is already in use by another project."})
	s.expect(describeCmd, ok)
	s.expect(setCmd, ok)
	opts := s.opts()
	opts.MockBilling = true

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.Contains(s.output.String(), "already exists, reusing it")
}

func (s *SetupTestSuite) TestRun_ProjectOwnedByOthers() {
	s.expect(versionCmd, ok)
	s.expect(createCmd, models.CommandResult{Output: "ERROR: The project ID you specified is already in use by another project."})
	s.expect(describeCmd, models.CommandResult{Output: "PERMISSION_DENIED"})

	result := s.handler.Run(context.Background(), s.opts())

	s.Equal("Failed to create project", result.Error)
	s.assertNotRun("config set")
	_, err := os.Stat(filepath.Join(s.config.RecommendationsDir, "places-api-recommendations-places-demo-1.txt"))
	s.NoError(err)
}

func (s *SetupTestSuite) TestRun_SetProjectFailureFallsBackToMock() {
	s.expect(versionCmd, ok)
	s.expect(createCmd, ok)
	s.expect(setCmd, models.CommandResult{Output: "ERROR"})

	result := s.handler.Run(context.Background(), s.opts())

	s.True(result.Success)
	s.True(result.IsMock)
	s.assertNotRun("services enable")
}

func (s *SetupTestSuite) TestRun_SetProjectFailureInteractive() {
	s.expect(versionCmd, ok)
	s.expect(createCmd, ok)
	s.expect(setCmd, models.CommandResult{Output: "ERROR"})
	opts := s.opts()
	opts.AutoConfirm = false

	result := s.handler.Run(context.Background(), opts)

	s.Equal("Failed to create project", result.Error)
}

func (s *SetupTestSuite) TestRun_BillingMenuAlternativesThenMock() {
	s.expectProject()
	s.input.On("Select", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(3, nil).Once()
	s.input.On("Select", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(2, nil).Once()
	opts := s.opts()
	opts.AutoConfirm = false

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.True(result.IsMock)
	s.True(opts.MockBilling)
	s.Contains(s.output.String(), "Startup and trial credits")
	data, err := os.ReadFile(filepath.Join(s.config.RecommendationsDir, "places-api-recommendations-places-demo-1.txt"))
	s.Require().NoError(err)
	s.Equal(setup.Recommendations(projectID, &models.SetupOptions{
		ProjectID: projectID, ProjectName: "Demo Project", SkipAuth: true,
	}), string(data))
}

func (s *SetupTestSuite) TestRun_BillingMenuAlternativesAreBounded() {
	s.config.BillingMenuMaxViews = 1
	s.expectProject()
	withAlternatives := mock.MatchedBy(func(options []string) bool { return len(options) == 4 })
	withoutAlternatives := mock.MatchedBy(func(options []string) bool { return len(options) == 3 })
	s.input.On("Select", mock.Anything, mock.Anything, mock.Anything, withAlternatives, mock.Anything).Return(3, nil).Once()
	s.input.On("Select", mock.Anything, mock.Anything, mock.Anything, withoutAlternatives, mock.Anything).Return(1, nil).Once()
	opts := s.opts()
	opts.AutoConfirm = false

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.True(opts.NoBilling)
	s.input.AssertExpectations(s.T())
}

func (s *SetupTestSuite) TestRun_BillingLinkedInteractive() {
	s.expectProject()
	s.expect(enableCmd, ok)
	s.expectRealKey()
	s.expect(keyUpdateCmd, ok)
	s.input.On("Select", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0, nil)
	opts := s.opts()
	opts.AutoConfirm = false

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.False(result.IsMock)
}

func (s *SetupTestSuite) TestRun_BillingMenuCanceled() {
	s.expectProject()
	s.input.On("Select", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, input.ErrInputCanceled)
	opts := s.opts()
	opts.AutoConfirm = false

	result := s.handler.Run(context.Background(), opts)

	s.Equal("Failed to configure billing", result.Error)
}

func (s *SetupTestSuite) TestRun_ServiceBillingFailureAutoConfirm() {
	s.expectProject()
	s.expect(enableCmd, models.CommandResult{Output: "FAILED_PRECONDITION: Billing account for project is not found."})

	result := s.handler.Run(context.Background(), s.opts())

	s.Equal("Failed to enable Places API", result.Error)
	s.assertNotRun("api-keys")
	_, err := os.Stat(filepath.Join(s.config.RecommendationsDir, "places-api-recommendations-places-demo-1.txt"))
	s.NoError(err)
}

func (s *SetupTestSuite) TestRun_ServiceBillingFailureSwitchesToMock() {
	s.expectProject()
	s.expect(enableCmd, models.CommandResult{Output: "FAILED_PRECONDITION: Billing account for project is not found."})
	s.input.On("Select", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0, nil)
	s.input.On("Confirm", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	opts := s.opts()
	opts.AutoConfirm = false

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.True(result.IsMock)
	s.assertNotRun("api-keys")
}

func (s *SetupTestSuite) TestRun_ServiceFailureWithoutBilling() {
	s.expectProject()
	s.expect(enableCmd, models.CommandResult{Output: "PERMISSION_DENIED"})

	result := s.handler.Run(context.Background(), s.opts())

	s.Equal("Failed to enable Places API", result.Error)
	s.NoFileExists(filepath.Join(s.config.RecommendationsDir, "places-api-recommendations-places-demo-1.txt"))
}

func (s *SetupTestSuite) TestRun_PromptsForProjectDetails() {
	s.expect(versionCmd, ok)
	s.expect(createCmd, ok)
	s.expect(setCmd, ok)
	s.input.On("Prompt", mock.Anything, "Enter your project ID (must be globally unique)", mock.Anything).
		Return(projectID, nil)
	s.input.On("Prompt", mock.Anything, "Enter your project name", "Places API Project").
		Return("Demo Project", nil)
	opts := &models.SetupOptions{SkipAuth: true, MockBilling: true}

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.Equal(projectID, result.ProjectID)
	s.input.AssertExpectations(s.T())
}

func (s *SetupTestSuite) TestRun_GeneratesProjectIDWhenAutoConfirm() {
	s.gcloud.On("Run", mock.Anything, mock.Anything, mock.Anything).Return(ok)
	opts := &models.SetupOptions{SkipAuth: true, AutoConfirm: true, MockBilling: true}

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.Regexp(`^places-api-[0-9a-f]{6}$`, result.ProjectID)
	s.Equal("Places API Project", opts.ProjectName)
}

func (s *SetupTestSuite) TestRun_InvalidProjectID() {
	s.expect(versionCmd, ok)
	opts := s.opts()
	opts.ProjectID = "Bad_ID"

	result := s.handler.Run(context.Background(), opts)

	s.Equal("Failed to create project", result.Error)
	s.assertNotRun("projects create")
}

func (s *SetupTestSuite) TestRun_InvalidProjectIDIsPromptedAgain() {
	s.expect(versionCmd, ok)
	s.expect(createCmd, ok)
	s.expect(setCmd, ok)
	s.input.On("Prompt", mock.Anything, "Enter your project ID (must be globally unique)", mock.Anything).
		Return("Bad_ID", nil).Once()
	s.input.On("Prompt", mock.Anything, "Enter your project ID (must be globally unique)", mock.Anything).
		Return(projectID, nil).Once()
	s.input.On("Prompt", mock.Anything, "Enter your project name", "Places API Project").
		Return("Demo Project", nil)
	opts := &models.SetupOptions{SkipAuth: true, MockBilling: true}

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.Equal(projectID, result.ProjectID)
	s.Contains(s.output.String(), `Invalid project ID "Bad_ID"`)
	s.input.AssertNumberOfCalls(s.T(), "Prompt", 3)
}

func (s *SetupTestSuite) TestRun_ProjectIDPromptCanceled() {
	s.expect(versionCmd, ok)
	s.input.On("Prompt", mock.Anything, "Enter your project ID (must be globally unique)", mock.Anything).
		Return("", input.ErrInputCanceled)
	opts := &models.SetupOptions{SkipAuth: true, MockBilling: true}

	result := s.handler.Run(context.Background(), opts)

	s.Equal("Failed to create project", result.Error)
	s.assertNotRun("projects create")
}

func (s *SetupTestSuite) TestRun_ReusedProjectRestrictsNewestKey() {
	s.expect(versionCmd, ok)
	s.expect(createCmd, models.CommandResult{Output: "ERROR: The project ID you specified is already in use by another project."})
	s.expect(describeCmd, ok)
	s.expect(setCmd, ok)
	s.expect(enableCmd, ok)
	s.expect(keyCreateCmd, ok)
	s.expect(keyListCmd, models.CommandResult{Success: true, Output: `[
		{"uid": "key-uid-0", "displayName": "places-api-key", "createTime": "2024-05-02T08:00:00.000000Z"},
		{"uid": "key-uid-1", "displayName": "places-api-key", "createTime": "2026-10-15T08:00:00.000000Z"}
	]`})
	s.expect(keyGetCmd, models.CommandResult{Success: true, Output: `{"keyString": "AIzaRealKey123"}`})
	s.expect(keyUpdateCmd, ok)

	result := s.handler.Run(context.Background(), s.opts())

	s.True(result.Success)
	s.Equal("AIzaRealKey123", result.APIKey)
	s.assertNotRun("key-uid-0")
	s.gcloud.AssertExpectations(s.T())
}

// interrupt stands in for a Ctrl-C pressed while command's spinner is shown.
func (s *SetupTestSuite) interrupt(command string, result models.CommandResult) {
	s.gcloud.On("Run", mock.Anything, mock.Anything, command).
		Run(func(args mock.Arguments) {
			ctx, _ := args.Get(0).(context.Context)
			program.Interrupt(ctx)
		}).
		Return(result)
}

func (s *SetupTestSuite) TestRun_InterruptDuringProjectCreate() {
	s.expect(versionCmd, ok)
	s.interrupt(createCmd, models.CommandResult{Output: "interrupted by user"})

	result := s.handler.Run(context.Background(), s.opts())

	s.False(result.Success)
	s.Equal("Setup canceled", result.Error)
	s.Zero(s.runCount(setCmd))
	s.assertNotRun("api-keys")
}

func (s *SetupTestSuite) TestRun_InterruptStopsAfterFinishedCommand() {
	s.expectProject()
	s.expect(enableCmd, ok)
	s.interrupt(keyCreateCmd, ok)

	result := s.handler.Run(context.Background(), s.opts())

	s.False(result.Success)
	s.Equal("Setup canceled", result.Error)
	s.Empty(result.APIKey)
	s.Zero(s.runCount(keyListCmd))
	s.keystore.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything)
}

func (s *SetupTestSuite) TestRun_InterruptDuringRestrictIsReported() {
	s.expectProject()
	s.expect(enableCmd, ok)
	s.expectRealKey()
	s.interrupt(keyUpdateCmd, models.CommandResult{Output: "interrupted by user"})

	result := s.handler.Run(context.Background(), s.opts())

	s.Equal("Setup canceled", result.Error)
	s.Contains(s.output.String(), "key-uid-1 was created but not restricted")
}

func (s *SetupTestSuite) TestRun_CanceledContextStopsPipeline() {
	ctx, cancel := context.WithCancel(context.Background())
	s.gcloud.On("Run", mock.Anything, mock.Anything, versionCmd).
		Run(func(mock.Arguments) { cancel() }).
		Return(ok)

	result := s.handler.Run(ctx, s.opts())

	s.Equal("Setup canceled", result.Error)
	s.assertNotRun("projects create")
}

func (s *SetupTestSuite) TestPreflight_InstallsOnLinux() {
	s.expect(versionCmd, models.CommandResult{Output: "not found"}).Once()
	s.expect("curl --version", ok)
	s.expect("bash --version", ok)
	s.expect(`bash -c "curl -sSL https://sdk.cloud.google.com | bash -s -- --disable-prompts"`, ok)
	s.expect(versionCmd, ok).Once()

	res := s.handler.Preflight(context.Background())

	s.Equal(models.PreflightResult{Installed: true}, res)
	s.gcloud.AssertExpectations(s.T())
}

func (s *SetupTestSuite) TestPreflight_MissingPrerequisite() {
	s.expect(versionCmd, models.CommandResult{Output: "not found"})
	s.expect("curl --version", models.CommandResult{Output: "not found"})
	s.expect("bash --version", ok)

	res := s.handler.Preflight(context.Background())

	s.Equal(models.PreflightResult{}, res)
	s.assertNotRun("sdk.cloud.google.com")
	s.Contains(s.output.String(), "curl")
}

func (s *SetupTestSuite) TestPreflight_Windows() {
	s.handler.GOOS = "windows"
	s.expect(versionCmd, models.CommandResult{Output: "not found"})

	res := s.handler.Preflight(context.Background())

	s.Equal(models.PreflightResult{NeedsRestart: true}, res)
	s.browser.AssertCalled(s.T(), "OpenURL", "https://cloud.google.com/sdk/docs/install#windows")
}

func (s *SetupTestSuite) TestRun_RestartRequired() {
	s.T().Setenv("PATH", os.Getenv("PATH"))
	s.handler.GOOS = "windows"
	s.expect(versionCmd, models.CommandResult{Output: "not found"})

	result := s.handler.Run(context.Background(), s.opts())

	s.False(result.Success)
	s.Contains(result.Error, "Restart your terminal")
}

func (s *SetupTestSuite) TestRun_FoundAfterPathPatch() {
	s.T().Setenv("PATH", os.Getenv("PATH"))
	s.T().Setenv("HOME", s.T().TempDir())
	s.expect(versionCmd, models.CommandResult{Output: "not found"}).Once()
	s.expect("curl --version", ok)
	s.expect("bash --version", ok)
	s.expect(`bash -c "curl -sSL https://sdk.cloud.google.com | bash -s -- --disable-prompts"`, ok)
	s.expect(versionCmd, models.CommandResult{Output: "not found"}).Once()
	s.expect(versionCmd, ok).Once()
	s.expect(createCmd, ok)
	s.expect(setCmd, ok)
	opts := s.opts()
	opts.MockBilling = true

	result := s.handler.Run(context.Background(), opts)

	s.True(result.Success)
	s.Contains(os.Getenv("PATH"), filepath.Join(os.Getenv("HOME"), "google-cloud-sdk", "bin"))
}
