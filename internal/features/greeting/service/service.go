package service

const Greeting = "Hello, World!"

type GreetingService interface {
	Greet() string
}

type greetingService struct{}

func New() GreetingService {
	return &greetingService{}
}

func (s *greetingService) Greet() string {
	return Greeting
}
