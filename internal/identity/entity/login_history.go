package entity

type LoginStatus string

const (
	LoginStatusSuccess            LoginStatus = "success"
	LoginStatusFailedPassword     LoginStatus = "failed_password"
	LoginStatusFailedOTP          LoginStatus = "failed_otp"
	LoginStatusFailedNotification LoginStatus = "failed_notification"
)

func (s LoginStatus) String() string { return string(s) }
