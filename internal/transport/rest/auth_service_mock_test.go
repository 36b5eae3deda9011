package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	SignupFunc         func(ctx context.Context, input auth.SignupInput) (*auth.AuthResult, error)
	LoginFunc          func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RefreshFunc        func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc         func(ctx context.Context, refreshToken string) error
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, input auth.ResetPasswordInput) error
	MeFunc             func(ctx context.Context) (*domain.User, error)
	UpdateMeFunc       func(ctx context.Context, input auth.UpdateMeInput) (*domain.User, error)

	calls struct {
		Signup []struct {
			Ctx   context.Context
			Input auth.SignupInput
		}
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Refresh []struct {
			Ctx   context.Context
			Input auth.RefreshInput
		}
		Logout []struct {
			Ctx          context.Context
			RefreshToken string
		}
		ForgotPassword []struct {
			Ctx   context.Context
			Email string
		}
		ResetPassword []struct {
			Ctx   context.Context
			Input auth.ResetPasswordInput
		}
		Me []struct {
			Ctx context.Context
		}
		UpdateMe []struct {
			Ctx   context.Context
			Input auth.UpdateMeInput
		}
	}
	lockSignup         sync.RWMutex
	lockLogin          sync.RWMutex
	lockRefresh        sync.RWMutex
	lockLogout         sync.RWMutex
	lockForgotPassword sync.RWMutex
	lockResetPassword  sync.RWMutex
	lockMe             sync.RWMutex
	lockUpdateMe       sync.RWMutex
}

func (mock *authServiceMock) Signup(ctx context.Context, input auth.SignupInput) (*auth.AuthResult, error) {
	if mock.SignupFunc == nil {
		panic("authServiceMock.SignupFunc: method is nil but authService.Signup was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.SignupInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSignup.Lock()
	mock.calls.Signup = append(mock.calls.Signup, callInfo)
	mock.lockSignup.Unlock()
	return mock.SignupFunc(ctx, input)
}

func (mock *authServiceMock) SignupCalls() []struct {
	Ctx   context.Context
	Input auth.SignupInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.SignupInput
	}
	mock.lockSignup.RLock()
	calls = mock.calls.Signup
	mock.lockSignup.RUnlock()
	return calls
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.LoginInput
	}
	mock.lockLogin.RLock()
	calls = mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	if mock.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc: method is nil but authService.Refresh was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RefreshInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, input)
}

func (mock *authServiceMock) RefreshCalls() []struct {
	Ctx   context.Context
	Input auth.RefreshInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.RefreshInput
	}
	mock.lockRefresh.RLock()
	calls = mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context, refreshToken string) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		RefreshToken string
	}{
		Ctx:          ctx,
		RefreshToken: refreshToken,
	}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx, refreshToken)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx          context.Context
	RefreshToken string
} {
	var calls []struct {
		Ctx          context.Context
		RefreshToken string
	}
	mock.lockLogout.RLock()
	calls = mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *authServiceMock) ForgotPassword(ctx context.Context, email string) error {
	if mock.ForgotPasswordFunc == nil {
		panic("authServiceMock.ForgotPasswordFunc: method is nil but authService.ForgotPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockForgotPassword.Lock()
	mock.calls.ForgotPassword = append(mock.calls.ForgotPassword, callInfo)
	mock.lockForgotPassword.Unlock()
	return mock.ForgotPasswordFunc(ctx, email)
}

func (mock *authServiceMock) ForgotPasswordCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockForgotPassword.RLock()
	calls = mock.calls.ForgotPassword
	mock.lockForgotPassword.RUnlock()
	return calls
}

func (mock *authServiceMock) ResetPassword(ctx context.Context, input auth.ResetPasswordInput) error {
	if mock.ResetPasswordFunc == nil {
		panic("authServiceMock.ResetPasswordFunc: method is nil but authService.ResetPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.ResetPasswordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockResetPassword.Lock()
	mock.calls.ResetPassword = append(mock.calls.ResetPassword, callInfo)
	mock.lockResetPassword.Unlock()
	return mock.ResetPasswordFunc(ctx, input)
}

func (mock *authServiceMock) ResetPasswordCalls() []struct {
	Ctx   context.Context
	Input auth.ResetPasswordInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.ResetPasswordInput
	}
	mock.lockResetPassword.RLock()
	calls = mock.calls.ResetPassword
	mock.lockResetPassword.RUnlock()
	return calls
}

func (mock *authServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *authServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockMe.RLock()
	calls = mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *authServiceMock) UpdateMe(ctx context.Context, input auth.UpdateMeInput) (*domain.User, error) {
	if mock.UpdateMeFunc == nil {
		panic("authServiceMock.UpdateMeFunc: method is nil but authService.UpdateMe was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.UpdateMeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateMe.Lock()
	mock.calls.UpdateMe = append(mock.calls.UpdateMe, callInfo)
	mock.lockUpdateMe.Unlock()
	return mock.UpdateMeFunc(ctx, input)
}

func (mock *authServiceMock) UpdateMeCalls() []struct {
	Ctx   context.Context
	Input auth.UpdateMeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.UpdateMeInput
	}
	mock.lockUpdateMe.RLock()
	calls = mock.calls.UpdateMe
	mock.lockUpdateMe.RUnlock()
	return calls
}
