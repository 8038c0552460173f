package store

import (
	"context"

	"careernav/internal/types"
)

// SampleJobs returns the built-in job postings used to seed an empty job
// store. Matching needs a corpus to rank against; these four postings keep
// the service usable before any real jobs are loaded.
func SampleJobs() []types.JobPosting {
	return []types.JobPosting{
		{
			Title:   "Software Engineer",
			Company: "Tech Corp",
			Description: `Looking for a skilled software engineer with strong expertise in Python development and modern web technologies.
The ideal candidate should have hands-on experience with:
- Building scalable applications using Python and React
- Implementing cloud solutions on AWS or similar platforms
- Setting up and maintaining CI/CD pipelines
- Writing clean, maintainable, and well-tested code
- Working with RESTful APIs and microservices architecture`,
			Requirements: []string{"Python", "React", "AWS", "CI/CD", "REST APIs", "Microservices"},
		},
		{
			Title:   "Full Stack Developer",
			Company: "Web Solutions Inc",
			Description: `We're seeking a Full Stack Developer proficient in modern web development technologies.
Key responsibilities include:
- Developing responsive web applications using React and Node.js
- Designing and implementing MongoDB database schemas
- Building RESTful APIs and real-time communication features
- Implementing security best practices and user authentication
- Collaborating with UX designers to implement intuitive interfaces`,
			Requirements: []string{"JavaScript", "Node.js", "React", "MongoDB", "REST APIs", "WebSocket"},
		},
		{
			Title:   "ML Engineer",
			Company: "AI Innovations",
			Description: `Seeking an experienced Machine Learning Engineer to join our AI team.
Required skills and experience:
- Strong Python programming and data science skills
- Expertise in deep learning frameworks like TensorFlow
- Experience with NLP and text processing
- Knowledge of machine learning deployment and MLOps
- Familiarity with cloud-based ML platforms
- Experience with large language models and transformers`,
			Requirements: []string{"Python", "TensorFlow", "NLP", "Deep Learning", "MLOps", "Cloud ML"},
		},
		{
			Title:   "DevOps Engineer",
			Company: "Cloud Systems Inc",
			Description: `Looking for a DevOps Engineer to strengthen our infrastructure team.
Key responsibilities:
- Managing and automating cloud infrastructure on AWS/Azure
- Implementing and maintaining CI/CD pipelines
- Container orchestration with Kubernetes
- Infrastructure as Code using Terraform
- Monitoring and logging implementation
- Security implementation and compliance`,
			Requirements: []string{"AWS", "Docker", "Kubernetes", "Terraform", "CI/CD", "Security"},
		},
	}
}

// SeedSampleJobsIfEmpty loads the sample postings into an empty job store.
// Returns true when seeding happened.
func SeedSampleJobsIfEmpty(ctx context.Context, jobs JobStore) (bool, error) {
	count, err := jobs.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := jobs.Seed(ctx, SampleJobs()); err != nil {
		return false, err
	}
	return true, nil
}
