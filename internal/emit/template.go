package emit

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>repolens – {{.RepoName}}</title>
<style>
  * { box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif;
    margin: 0; padding: 0; line-height: 1.6;
    background: linear-gradient(135deg, #2ecc71 0%, #3498db 100%);
  }
  .page {
    max-width: calc(1400px - 300px); margin: 0 auto 0 300px;
    background: white; min-height: 100vh;
    box-shadow: 0 0 50px rgba(0,0,0,0.1);
    transition: margin-left 0.3s ease, max-width 0.3s ease;
  }
  .page.sidebar-collapsed { margin-left: 0; max-width: 1400px; }
  .sidebar {
    position: fixed; left: 0; top: 0; width: 300px; height: 100vh;
    background: white; border-right: 2px solid #e2e8f0;
    overflow-y: auto; padding: 1rem; z-index: 100;
    transition: transform 0.3s ease;
  }
  .sidebar.collapsed { transform: translateX(-100%); }
  .sidebar-toggle {
    position: fixed; top: 10px; left: 270px; z-index: 101;
    background: #2ecc71; color: white; border: none;
    width: 24px; height: 24px; border-radius: 50%; cursor: pointer;
    font-size: 12px; display: flex; align-items: center; justify-content: center;
    transition: all 0.3s ease;
  }
  .sidebar-toggle:hover { background: #27ae60; }
  .sidebar-toggle.sidebar-collapsed { left: 20px; }
  .sidebar h3 { margin: 0 0 1rem 0; color: #2d3748; font-size: 1.1rem; }
  .sidebar-toc { list-style: none; padding: 0; margin: 0; }
  .sidebar-toc li { padding: 0.4rem 0; border-bottom: 1px solid #f7fafc; }
  .sidebar-toc a { color: #2ecc71; text-decoration: none; font-size: 0.9rem; display: block; }
  .sidebar-toc a:hover { text-decoration: underline; color: #27ae60; }
  .sidebar-toc .file-icon { margin-right: 0.5rem; }
  @media (max-width: 768px) {
    .sidebar { width: 100%; transform: translateX(-100%); }
    .sidebar:not(.collapsed) { transform: translateX(0); }
    .page, .page.sidebar-collapsed { margin-left: 0; max-width: 1400px; }
  }
  header {
    background: linear-gradient(135deg, #2ecc71 0%, #3498db 100%);
    color: white; padding: 2rem; box-shadow: 0 4px 6px rgba(0,0,0,0.1);
  }
  h1 { margin: 0 0 0.5rem 0; font-size: 2rem; }
  .meta { font-size: 0.9rem; opacity: 0.95; }
  .meta a { color: white; text-decoration: underline; }
  .view-toggle {
    background: white; padding: 1.5rem 2rem; border-bottom: 2px solid #e2e8f0;
    display: flex; gap: 1rem; align-items: center;
  }
  .toggle-btn {
    padding: 0.65rem 1.5rem; border: 2px solid #cbd5e0; background: white;
    cursor: pointer; border-radius: 8px; font-size: 1rem; font-weight: 600;
    transition: all 0.2s; color: #4a5568;
  }
  .toggle-btn.active {
    background: linear-gradient(135deg, #2ecc71 0%, #3498db 100%);
    color: white; border-color: transparent;
    box-shadow: 0 4px 10px rgba(46, 204, 113, 0.3);
  }
  .toggle-btn:hover:not(.active) { background: #f7fafc; border-color: #2ecc71; color: #2ecc71; }
  main { padding: 2rem; }
  .selection-panel {
    background: #f7fafc; border: 2px solid #e2e8f0; border-radius: 12px;
    padding: 1.5rem; margin-bottom: 2rem;
  }
  .selection-panel h2 { margin: 0 0 1rem 0; font-size: 1.3rem; color: #2d3748; }
  .selection-stats {
    background: white; padding: 1rem; border-radius: 8px; margin-bottom: 1rem;
    display: flex; gap: 2rem; flex-wrap: wrap;
  }
  .stat-item { display: flex; flex-direction: column; }
  .stat-label { font-size: 0.85rem; color: #718096; text-transform: uppercase; letter-spacing: 0.5px; }
  .stat-value { font-size: 1.5rem; font-weight: 700; color: #2ecc71; }
  .quick-filters { display: flex; gap: 0.5rem; margin-bottom: 1rem; flex-wrap: wrap; }
  .filter-btn {
    padding: 0.5rem 1rem; border: 1px solid #cbd5e0; background: white;
    border-radius: 6px; cursor: pointer; font-size: 0.9rem; transition: all 0.2s;
  }
  .filter-btn:hover { background: #2ecc71; color: white; border-color: #2ecc71; }
  .folder-tree {
    background: white; border: 1px solid #e2e8f0; border-radius: 8px;
    padding: 1rem; max-height: 400px; overflow-y: auto;
  }
  .tree-folder, .tree-file { margin: 0.25rem 0; }
  .tree-folder label, .tree-file label {
    cursor: pointer; display: flex; align-items: center; padding: 0.25rem;
    border-radius: 4px; transition: background 0.2s;
  }
  .tree-folder label:hover, .tree-file label:hover { background: #f7fafc; }
  .tree-children { margin-left: 1.5rem; }
  .folder-icon, .file-icon { margin: 0 0.5rem; }
  input[type="checkbox"] { margin-right: 0.5rem; }
  .file-section {
    border: 1px solid #e2e8f0; border-radius: 12px; padding: 2rem;
    margin-bottom: 2rem; background: white; box-shadow: 0 2px 4px rgba(0,0,0,0.05);
  }
  .file-section.hidden { display: none; }
  .file-section h2 {
    margin: 0 0 1rem 0; font-size: 1.3rem; color: #2d3748;
    display: flex; align-items: center; gap: 0.5rem;
  }
  .file-body { margin-bottom: 1rem; }
  pre {
    background: #f7fafc; padding: 1rem; overflow: auto; border-radius: 8px;
    border-left: 4px solid #2ecc71;
  }
  code { font-family: ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace; }
  .highlight { overflow-x: auto; }
  .back-top { font-size: 0.9rem; margin-top: 1rem; }
  .back-top a { color: #2ecc71; text-decoration: none; }
  .back-top a:hover { text-decoration: underline; }
  .muted { color: #718096; font-weight: normal; font-size: 0.9em; }
  .skip-list { list-style: none; padding-left: 1rem; }
  .skip-list code { background: #f7fafc; padding: 0.1rem 0.3rem; border-radius: 4px; }
  details { margin: 1rem 0; padding: 0.5rem; background: #f7fafc; border-radius: 6px; }
  summary { cursor: pointer; font-weight: 600; padding: 0.5rem; }
  summary:hover { background: #edf2f7; border-radius: 4px; }
  #llm-view { display: none; }
  .llm-section { background: white; padding: 2rem; border-radius: 12px; border: 1px solid #e2e8f0; }
  .llm-section h2 { margin-top: 0; color: #2d3748; }
  #llm-text {
    width: 100%; height: 70vh;
    font-family: ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace;
    font-size: 0.9rem; border: 2px solid #cbd5e0; border-radius: 12px;
    padding: 1.5rem; resize: vertical; background: #f7fafc; color: #2d3748;
  }
  .copy-hint {
    margin-top: 1rem; padding: 1rem;
    background: linear-gradient(135deg, rgba(46, 204, 113, 0.1) 0%, rgba(52, 152, 219, 0.1) 100%);
    border-left: 4px solid #2ecc71; border-radius: 8px;
  }
  kbd {
    background: #edf2f7; border: 1px solid #cbd5e0; border-radius: 4px;
    padding: 0.15rem 0.4rem; font-family: monospace; font-size: 0.85em;
  }
  .error { border-left-color: #e53e3e; }
  {{.HighlightCSS}}
</style>
</head>
<body>
<a id="top"></a>

<button class="sidebar-toggle" onclick="toggleSidebar()">◀</button>

<div class="sidebar" id="sidebar">
  <h3>📑 Files ({{.RenderedCount}})</h3>
  <ul class="sidebar-toc">
    {{range .TOC}}<li><a href="#file-{{.Anchor}}"><span class="file-icon">{{.Icon}}</span>{{.Rel}}</a></li>
    {{end}}
  </ul>
</div>

<div class="page">
  <header>
    <h1>🚀 {{.RepoName}}</h1>
    <div class="meta">
      {{if .LocationIsURL}}<div><strong>Repository:</strong> <a href="{{.Location}}">{{.Location}}</a></div>
      {{else}}<div><strong>Repository:</strong> {{.Location}}</div>
      {{end}}<div><strong>Commit:</strong> {{.ShortCommit}}</div>
      <div><strong>Total files:</strong> {{.TotalFiles}} · <strong>Rendered:</strong> {{.RenderedCount}} · <strong>Skipped:</strong> {{.SkippedCount}}</div>
    </div>
  </header>

  <div class="view-toggle">
    <strong>View:</strong>
    <button class="toggle-btn active" onclick="showHumanView(this)">👤 Human</button>
    <button class="toggle-btn" onclick="showLLMView(this)">🤖 LLM</button>
  </div>

  <main>
    <div id="human-view">
      <div class="selection-panel">
        <h2>📁 Select Files to Include</h2>

        <div class="selection-stats">
          <div class="stat-item">
            <span class="stat-label">Selected Files</span>
            <span class="stat-value" id="selected-count">{{.RenderedCount}}</span>
          </div>
          <div class="stat-item">
            <span class="stat-label">Total Size</span>
            <span class="stat-value" id="selected-size">{{.SelectedSize}}</span>
          </div>
        </div>

        <div class="quick-filters">
          <button class="filter-btn" onclick="selectAll()">✅ Select All</button>
          <button class="filter-btn" onclick="deselectAll()">❌ Deselect All</button>
          <button class="filter-btn" onclick="filterByExtension('.py')">🐍 Python Only</button>
          <button class="filter-btn" onclick="filterByExtension('.go')">🐹 Go Only</button>
          <button class="filter-btn" onclick="filterByExtension('.js')">💛 JavaScript Only</button>
          <button class="filter-btn" onclick="filterByExtension('.md')">📄 Markdown Only</button>
          <button class="filter-btn" onclick="toggleTests()">🧪 Toggle Tests</button>
        </div>

        <div class="folder-tree" id="folder-tree">
          {{.TreeHTML}}
        </div>
      </div>

      {{if .SkipLists}}<section>
        <h2>Skipped items</h2>
        {{range .SkipLists}}<details><summary>{{.Title}} ({{len .Items}})</summary>
        <ul class="skip-list">
          {{range .Items}}<li><code>{{.Rel}}</code> <span class="muted">({{.Size}})</span></li>
          {{end}}
        </ul></details>
        {{end}}
      </section>
      {{end}}

      <div id="file-sections">
        {{range .Sections}}<section class="file-section" id="file-{{.Anchor}}" data-file="{{.Rel}}">
          <h2><span class="file-icon">{{.Icon}}</span> {{.Rel}} <span class="muted">({{.Size}})</span></h2>
          <div class="file-body">{{.Body}}</div>
          <div class="back-top"><a href="#top">↑ Back to top</a></div>
        </section>
        {{end}}
      </div>
    </div>

    <div id="llm-view">
      <div class="llm-section">
        <h2>🤖 LLM View - CXML Format</h2>
        <p>This view updates based on your file selection. Copy and paste to an LLM for analysis:</p>
        <textarea id="llm-text" readonly></textarea>
        <div class="copy-hint">
          💡 <strong>Tip:</strong> Click in the text area, press <kbd>Ctrl+A</kbd> (or <kbd>Cmd+A</kbd>), then <kbd>Ctrl+C</kbd> (or <kbd>Cmd+C</kbd>) to copy.
        </div>
      </div>
    </div>
  </main>
</div>

<script>
const fileData = {{.FileDataJSON}};

function updateSelection() {
  const checked = new Set();
  document.querySelectorAll('.file-checkbox:checked').forEach(cb => checked.add(cb.dataset.file));

  // fileData is embedded in manifest order; the export indexes follow it,
  // not the tree's folders-first checkbox order.
  const selectedFiles = fileData.filter(f => checked.has(f.path));

  document.getElementById('selected-count').textContent = selectedFiles.length;
  const totalSize = selectedFiles.reduce((sum, f) => sum + f.size, 0);
  document.getElementById('selected-size').textContent = formatBytes(totalSize);

  document.querySelectorAll('.file-section').forEach(section => {
    section.classList.toggle('hidden', !checked.has(section.dataset.file));
  });

  syncFolderCheckboxes(checked);
  updateLLMText(selectedFiles);
}

function syncFolderCheckboxes(checked) {
  document.querySelectorAll('.folder-checkbox').forEach(folderCb => {
    const prefix = folderCb.dataset.folder + '/';
    const descendants = fileData.filter(f => f.path.startsWith(prefix));
    const selected = descendants.filter(f => checked.has(f.path)).length;
    folderCb.checked = descendants.length > 0 && selected === descendants.length;
    folderCb.indeterminate = selected > 0 && selected < descendants.length;
  });
}

function updateLLMText(selectedFiles) {
  let cxml = '<documents>\n';
  selectedFiles.forEach((file, index) => {
    cxml += '<document index="' + (index + 1) + '">\n';
    cxml += '<source>' + file.path + '</source>\n';
    cxml += '<document_content>\n';
    cxml += file.content;
    cxml += '\n</document_content>\n</document>\n';
  });
  cxml += '</documents>';
  document.getElementById('llm-text').value = cxml;
}

function formatBytes(bytes) {
  const units = ['B', 'KiB', 'MiB', 'GiB'];
  let size = bytes;
  let unitIndex = 0;
  while (size >= 1024 && unitIndex < units.length - 1) {
    size /= 1024;
    unitIndex++;
  }
  return unitIndex === 0 ? Math.floor(size) + ' ' + units[unitIndex] : size.toFixed(1) + ' ' + units[unitIndex];
}

function selectAll() {
  document.querySelectorAll('.file-checkbox, .folder-checkbox').forEach(cb => cb.checked = true);
  updateSelection();
}

function deselectAll() {
  document.querySelectorAll('.file-checkbox, .folder-checkbox').forEach(cb => cb.checked = false);
  updateSelection();
}

function filterByExtension(ext) {
  deselectAll();
  document.querySelectorAll('.file-checkbox').forEach(cb => {
    if (cb.dataset.file.endsWith(ext)) {
      cb.checked = true;
    }
  });
  updateSelection();
}

function isTestPath(filePath) {
  const base = filePath.split('/').pop();
  if (base.includes('_test.') || base.includes('.test.')) {
    return true;
  }
  return filePath.split('/').some(seg => seg === 'test' || seg === 'tests');
}

function toggleTests() {
  document.querySelectorAll('.file-checkbox').forEach(cb => {
    if (isTestPath(cb.dataset.file)) {
      cb.checked = !cb.checked;
    }
  });
  updateSelection();
}

document.querySelectorAll('.folder-checkbox').forEach(folderCb => {
  folderCb.addEventListener('change', function() {
    const folderPath = this.dataset.folder;
    const isChecked = this.checked;

    document.querySelectorAll('.file-checkbox').forEach(fileCb => {
      const filePath = fileCb.dataset.file;
      if (filePath.startsWith(folderPath + '/') || filePath === folderPath) {
        fileCb.checked = isChecked;
      }
    });

    updateSelection();
  });
});

document.querySelectorAll('.file-checkbox').forEach(cb => {
  cb.addEventListener('change', updateSelection);
});

function showHumanView(btn) {
  document.getElementById('human-view').style.display = 'block';
  document.getElementById('llm-view').style.display = 'none';
  document.querySelectorAll('.toggle-btn').forEach(b => b.classList.remove('active'));
  btn.classList.add('active');
}

function showLLMView(btn) {
  document.getElementById('human-view').style.display = 'none';
  document.getElementById('llm-view').style.display = 'block';
  document.querySelectorAll('.toggle-btn').forEach(b => b.classList.remove('active'));
  btn.classList.add('active');

  setTimeout(() => {
    const textArea = document.getElementById('llm-text');
    textArea.focus();
    textArea.select();
  }, 100);
}

function toggleSidebar() {
  const sidebar = document.getElementById('sidebar');
  const page = document.querySelector('.page');
  const toggleBtn = document.querySelector('.sidebar-toggle');

  sidebar.classList.toggle('collapsed');
  page.classList.toggle('sidebar-collapsed');

  if (sidebar.classList.contains('collapsed')) {
    toggleBtn.innerHTML = '▶';
    toggleBtn.classList.add('sidebar-collapsed');
  } else {
    toggleBtn.innerHTML = '◀';
    toggleBtn.classList.remove('sidebar-collapsed');
  }
}

updateSelection();
</script>
</body>
</html>
`
