package registry

// builtinGroups is the default alias table. User configuration extends or
// overrides it; see the config package.
func builtinGroups() []Group {
	return []Group{
		{
			Tool:        "git",
			InstallHint: "https://git-scm.com/downloads",
			Aliases: []Alias{
				{Name: "g", Description: "git"},
				{Name: "ga", Args: []string{"add"}, Description: "git add"},
				{Name: "gaa", Args: []string{"add", "--all"}, Description: "git add --all"},
				{Name: "gb", Args: []string{"branch"}, Description: "git branch"},
				{Name: "gc", Args: []string{"commit"}, Description: "git commit"},
				{Name: "gcm", Args: []string{"commit", "-m"}, Description: "git commit -m"},
				{Name: "gco", Args: []string{"checkout"}, Description: "git checkout"},
				{Name: "gd", Args: []string{"diff"}, Description: "git diff"},
				{Name: "gl", Args: []string{"log", "--oneline", "--graph"}, Description: "git log, compact graph"},
				{Name: "gp", Args: []string{"push"}, Description: "git push"},
				{Name: "gpl", Args: []string{"pull"}, Description: "git pull"},
				{Name: "gst", Args: []string{"status"}, Description: "git status"},
			},
		},
		{
			Tool:        "docker",
			InstallHint: "https://docs.docker.com/get-docker/",
			Aliases: []Alias{
				{Name: "d", Description: "docker"},
				{Name: "dps", Args: []string{"ps"}, Description: "docker ps"},
				{Name: "dpsa", Args: []string{"ps", "-a"}, Description: "docker ps -a"},
				{Name: "di", Args: []string{"images"}, Description: "docker images"},
				{Name: "dex", Args: []string{"exec", "-it"}, Description: "docker exec -it"},
				{Name: "dlog", Args: []string{"logs", "-f"}, Description: "docker logs -f"},
				{Name: "dcu", Args: []string{"compose", "up", "-d"}, Description: "docker compose up -d"},
				{Name: "dcd", Args: []string{"compose", "down"}, Description: "docker compose down"},
			},
		},
		{
			Tool:        "kubectl",
			InstallHint: "https://kubernetes.io/docs/tasks/tools/",
			Aliases: []Alias{
				{Name: "k", Description: "kubectl"},
				{Name: "kgp", Args: []string{"get", "pods"}, Description: "kubectl get pods"},
				{Name: "kgs", Args: []string{"get", "svc"}, Description: "kubectl get svc"},
				{Name: "kgn", Args: []string{"get", "nodes"}, Description: "kubectl get nodes"},
				{Name: "kaf", Args: []string{"apply", "-f"}, Description: "kubectl apply -f"},
				{Name: "kdel", Args: []string{"delete"}, Description: "kubectl delete"},
				{Name: "klog", Args: []string{"logs", "-f"}, Description: "kubectl logs -f"},
				{Name: "kex", Args: []string{"exec", "-it"}, Description: "kubectl exec -it"},
			},
		},
		{
			Tool:        "npm",
			InstallHint: "https://nodejs.org/en/download",
			Aliases: []Alias{
				{Name: "ni", Args: []string{"install"}, Description: "npm install"},
				{Name: "nid", Args: []string{"install", "--save-dev"}, Description: "npm install --save-dev"},
				{Name: "nr", Args: []string{"run"}, Description: "npm run"},
				{Name: "nt", Args: []string{"test"}, Description: "npm test"},
			},
		},
		{
			Tool:        "pnpm",
			InstallHint: "https://pnpm.io/installation",
			Aliases: []Alias{
				{Name: "p", Description: "pnpm"},
				{Name: "pi", Args: []string{"install"}, Description: "pnpm install"},
				{Name: "pr", Args: []string{"run"}, Description: "pnpm run"},
				{Name: "pd", Args: []string{"dev"}, Description: "pnpm dev"},
			},
		},
		{
			Tool:        "terraform",
			InstallHint: "https://developer.hashicorp.com/terraform/install",
			Aliases: []Alias{
				{Name: "tf", Description: "terraform"},
				{Name: "tfi", Args: []string{"init"}, Description: "terraform init"},
				{Name: "tfp", Args: []string{"plan"}, Description: "terraform plan"},
				{Name: "tfa", Args: []string{"apply"}, Description: "terraform apply"},
			},
		},
		{
			Tool:        "aws",
			InstallHint: "https://docs.aws.amazon.com/cli/latest/userguide/getting-started-install.html",
			Aliases: []Alias{
				{Name: "awsid", Args: []string{"sts", "get-caller-identity"}, Description: "aws sts get-caller-identity"},
				{Name: "s3ls", Args: []string{"s3", "ls"}, Description: "aws s3 ls"},
			},
		},
		{
			Tool:        "gh",
			InstallHint: "https://cli.github.com/",
			Aliases: []Alias{
				{Name: "ghpr", Args: []string{"pr", "create"}, Description: "gh pr create"},
				{Name: "ghprv", Args: []string{"pr", "view", "--web"}, Description: "gh pr view --web"},
				{Name: "ghrc", Args: []string{"repo", "clone"}, Description: "gh repo clone"},
			},
		},
		{
			Tool:        "ollama",
			InstallHint: "https://ollama.com/download",
			Aliases: []Alias{
				{Name: "ol", Description: "ollama"},
				{Name: "olr", Args: []string{"run"}, Description: "ollama run"},
				{Name: "oll", Args: []string{"list"}, Description: "ollama list"},
			},
		},
	}
}
