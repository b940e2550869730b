package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/smtp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Global mailer configuration
var (
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	auth         smtp.Auth
	templates    *template.Template
)

// InitMailer initializes the email sender with SMTP credentials and loads templates
func InitMailer(host, port, username, password string) error {
	smtpHost = host
	smtpPort = port
	smtpUsername = username
	smtpPassword = password
	auth = smtp.PlainAuth("", smtpUsername, smtpPassword, smtpHost)

	var err error
	templates, err = template.ParseGlob("templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}
	logrus.Info("email templates loaded")
	return nil
}

// SendEmail sends an HTML email using the specified template and data
func SendEmail(templateName, subject, toEmail string, data interface{}) {
	if templates == nil {
		logrus.Warn("mailer not initialized, skipping email")
		return
	}

	t := templates.Lookup(templateName + ".html")
	if t == nil {
		logrus.WithField("template", templateName).Error("email template not found")
		return
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		logrus.WithError(err).WithField("template", templateName).Error("failed to render email template")
		return
	}

	msg := []byte("To: " + toEmail + "\r\n" +
		"From: " + smtpUsername + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0;\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\";\r\n" +
		"\r\n" +
		body.String())

	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)
	if err := smtp.SendMail(addr, auth, smtpUsername, []string{toEmail}, msg); err != nil {
		logrus.WithError(err).WithField("to", toEmail).Error("failed to send email")
		return
	}
	logrus.WithFields(logrus.Fields{"to": toEmail, "subject": subject}).Info("email sent")
}

// HashPassword hashes a plain-text password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a plain-text password with a hashed password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken generates a new JWT token for the user
func GenerateToken(userID primitive.ObjectID, uid, email, role string, secretKey []byte) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.Hex(),
		"uid":     uid,
		"email":   email,
		"role":    role,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
		"iss":     "projectpulse-api",
		"aud":     "projectpulse-clients",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// GeneratePasswordResetToken generates a JWT for password reset
func GeneratePasswordResetToken(userID primitive.ObjectID, secretKey []byte) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.Hex(),
		"exp":     time.Now().Add(time.Hour).Unix(), // Reset token expires in 1 hour
		"iss":     "projectpulse-api-reset",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ValidatePasswordResetToken validates a password reset token and returns the user ID
func ValidatePasswordResetToken(tokenString string, secretKey []byte) (primitive.ObjectID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}

	if !token.Valid {
		return primitive.NilObjectID, fmt.Errorf("invalid password reset token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("invalid password reset token claims")
	}

	userIDHex, ok := claims["user_id"].(string)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("user ID claim missing from reset token")
	}

	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid user ID format in reset token")
	}

	return userID, nil
}

// RespondWithError sends a JSON error response
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]interface{}{"error": true, "message": message})
}

// RespondWithJSON sends a JSON response
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Error marshalling JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
