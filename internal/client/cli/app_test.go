package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/epavlovs/auth-service/internal/client/config"
	pb "github.com/epavlovs/auth-service/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeClient struct {
	signUpResp  *pb.SignUpResponse
	signInResp  *pb.SignInResponse
	signOutResp *pb.SignOutResponse
	err         error

	closed bool
}

func (f *fakeClient) SignUp(ctx context.Context, username, password string) (*pb.SignUpResponse, error) {
	return f.signUpResp, f.err
}
func (f *fakeClient) SignIn(ctx context.Context, username, password string) (*pb.SignInResponse, error) {
	return f.signInResp, f.err
}
func (f *fakeClient) SignOut(ctx context.Context, sessionToken string) (*pb.SignOutResponse, error) {
	return f.signOutResp, f.err
}
func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

// ---- helpers ----

func newTestApp(t *testing.T, fc *fakeClient) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()

	var buf bytes.Buffer
	app := NewApp(cfg)
	app.client = fc
	app.out = &buf
	return app, &buf
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := app.NewRootCmd()
	root.SetArgs(args)
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	return root.ExecuteContext(context.Background())
}

// ---- tests ----

func TestSignUpCmd(t *testing.T) {
	fc := &fakeClient{signUpResp: &pb.SignUpResponse{StatusCode: pb.StatusCode_SUCCESS}}
	app, buf := newTestApp(t, fc)

	err := execute(t, app, "signup", "-u", "alice", "-p", "secret")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "SignUp status: SUCCESS")
}

func TestSignUpCmd_RequiresUsername(t *testing.T) {
	app, _ := newTestApp(t, &fakeClient{})

	err := execute(t, app, "signup", "-p", "secret")
	assert.Error(t, err)
}

func TestSignUpCmd_PromptsForMissingPassword(t *testing.T) {
	fc := &fakeClient{signUpResp: &pb.SignUpResponse{StatusCode: pb.StatusCode_SUCCESS}}
	app, buf := newTestApp(t, fc)

	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("prompted"), nil }
	defer func() { readPassword = orig }()

	err := execute(t, app, "signup", "-u", "alice")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Enter password:")
	assert.Contains(t, buf.String(), "SignUp status: SUCCESS")
}

func TestSignInCmd_PrintsPayloadOnSuccess(t *testing.T) {
	fc := &fakeClient{signInResp: &pb.SignInResponse{
		StatusCode:   pb.StatusCode_SUCCESS,
		SessionToken: "tok",
		UserId:       "uid",
	}}
	app, buf := newTestApp(t, fc)

	err := execute(t, app, "signin", "-u", "alice", "-p", "secret")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "SignIn status: SUCCESS")
	assert.Contains(t, out, "Session token: tok")
	assert.Contains(t, out, "User id: uid")
}

func TestSignInCmd_NoPayloadOnFailure(t *testing.T) {
	fc := &fakeClient{signInResp: &pb.SignInResponse{StatusCode: pb.StatusCode_FAILURE}}
	app, buf := newTestApp(t, fc)

	err := execute(t, app, "signin", "-u", "alice", "-p", "wrong")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "SignIn status: FAILURE")
	assert.NotContains(t, out, "Session token:")
}

func TestSignOutCmd(t *testing.T) {
	fc := &fakeClient{signOutResp: &pb.SignOutResponse{StatusCode: pb.StatusCode_SUCCESS}}
	app, buf := newTestApp(t, fc)

	err := execute(t, app, "signout", "-s", "tok")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "SignOut status: SUCCESS")
}

func TestConnect_ReusesInjectedClient(t *testing.T) {
	fc := &fakeClient{}
	app, _ := newTestApp(t, fc)

	// connect must not dial when a client is already present.
	require.NoError(t, app.connect("unreachable:1"))
	assert.Same(t, fc, app.client)
}

func TestTransportErrorSurfaces(t *testing.T) {
	fc := &fakeClient{err: errors.New("connection refused")}
	app, _ := newTestApp(t, fc)

	err := execute(t, app, "signup", "-u", "alice", "-p", "secret")
	assert.Error(t, err)
}
