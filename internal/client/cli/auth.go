package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email and password and attempts to
// create an account. Success implicitly logs the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, username, email, password); err != nil {
		fmt.Println(a.session.Err())
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts for an identifier (username or email) and password and
// attempts to authenticate.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter username or email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, identifier, password); err != nil {
		fmt.Println(a.session.Err())
		return err
	}
	return nil
}

// Logout clears the stored credential token and the session user.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}

// ForgotPassword walks the two-step reset flow: request an OTP for an email
// address, then exchange the code for a session. Typing "resend" at the OTP
// prompt requests a fresh code; an empty line aborts.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your account email", os.Stdout)
	if err != nil {
		return err
	}

	st, err := a.session.ForgotPassword(ctx, email)
	if err != nil {
		fmt.Println(a.session.Err())
		return err
	}
	fmt.Println(st.Message)
	if st.EmailPreview != "" {
		fmt.Printf("Email preview: %s\n", st.EmailPreview)
	}

	for {
		otp, err := getSimpleText(a.reader, "Enter the OTP sent to your email (or 'resend', empty line to abort)", os.Stdout)
		if err != nil {
			return err
		}
		if otp == "" {
			return nil
		}
		if otp == "resend" {
			st, err := a.session.ForgotPassword(ctx, email)
			if err != nil {
				fmt.Println(a.session.Err())
				continue
			}
			fmt.Println(st.Message)
			if st.EmailPreview != "" {
				fmt.Printf("Email preview: %s\n", st.EmailPreview)
			}
			continue
		}

		if err := a.session.VerifyOTP(ctx, email, otp); err != nil {
			fmt.Println(a.session.Err())
			continue
		}
		fmt.Println("Success!")
		return nil
	}
}

// WhoAmI prints the current session user.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s> - %d points\n", u.Username, u.Email, u.Points)
	return nil
}
